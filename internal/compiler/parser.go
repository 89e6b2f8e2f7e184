package compiler

import "strings"

// watchSuffix marks a script key as the watch-command supplier for its
// sibling entry. "$1" in a watch command is replaced by the sibling's
// primary command before storage.
const (
	watchSuffix      = "::watch"
	watchPlaceholder = "$1"
)

// parsedKey is the typed form of a raw script key. No downstream stage
// pattern-matches on the raw string once a key is parsed.
type parsedKey struct {
	id    string
	typ   ScriptType
	match []string
}

// parseScriptKey splits a raw "<type>:<matchList>" key on the first colon
// and comma-splits the match list. Unknown types are a hard failure.
func parseScriptKey(id string) (parsedKey, error) {
	typeSeg, matchSeg, _ := strings.Cut(id, ":")

	typ, ok := ParseScriptType(typeSeg)
	if !ok {
		return parsedKey{}, scriptErr(ErrUnknownScriptType, id, "%q is not one of proxy, mount, run, build, bundle", typeSeg)
	}

	var match []string
	if matchSeg != "" {
		match = strings.Split(matchSeg, ",")
	}

	return parsedKey{id: id, typ: typ, match: match}, nil
}

// splitWatchKeys partitions the raw script map into primary entries and
// watch-command suppliers keyed by the sibling id they attach to. Watch keys
// are never independent scripts.
func splitWatchKeys(raw map[string]string) (primary, watch map[string]string) {
	primary = make(map[string]string, len(raw))
	watch = make(map[string]string)

	for key, command := range raw {
		if sibling, ok := strings.CutSuffix(key, watchSuffix); ok {
			watch[sibling] = command
			continue
		}
		primary[key] = command
	}

	return primary, watch
}

// watchCommandFor resolves the watch command attached to a script, applying
// the "$1" substitution against the primary command.
func watchCommandFor(watch map[string]string, id, command string) string {
	watchCmd, ok := watch[id]
	if !ok {
		return ""
	}
	return strings.ReplaceAll(watchCmd, watchPlaceholder, command)
}
