package compiler

import "strings"

// parseMountCommand parses "mount <dir> [--to /url]". Exactly one positional
// token is required; when --to is omitted the mount URL defaults to "/" plus
// the disk path token.
func parseMountCommand(id, command string) (*MountArgs, error) {
	rest, err := stripCommandWord(id, command, "mount")
	if err != nil {
		return nil, err
	}

	positional, toURL, err := splitToFlag(id, rest)
	if err != nil {
		return nil, err
	}
	if len(positional) != 1 {
		return nil, scriptErr(ErrMalformedScriptCommand, id, "mount requires exactly one directory, got %d", len(positional))
	}

	if toURL == "" {
		toURL = "/" + positional[0]
	} else if !strings.HasPrefix(toURL, "/") {
		return nil, scriptErr(ErrMalformedScriptCommand, id, "--to value %q must start with /", toURL)
	}

	return &MountArgs{FromDisk: positional[0], ToURL: toURL}, nil
}

// parseProxyCommand parses "proxy <url> --to /url". Both the source URL and
// the --to flag are required.
func parseProxyCommand(id, command string) (*ProxyArgs, error) {
	rest, err := stripCommandWord(id, command, "proxy")
	if err != nil {
		return nil, err
	}

	positional, toURL, err := splitToFlag(id, rest)
	if err != nil {
		return nil, err
	}
	if len(positional) != 1 {
		return nil, scriptErr(ErrMalformedScriptCommand, id, "proxy requires exactly one source URL, got %d", len(positional))
	}

	if toURL == "" {
		return nil, scriptErr(ErrMalformedScriptCommand, id, "proxy requires --to <urlPath>")
	}
	if !strings.HasPrefix(toURL, "/") {
		return nil, scriptErr(ErrMalformedScriptCommand, id, "--to value %q must start with /", toURL)
	}

	return &ProxyArgs{FromURL: positional[0], ToURL: toURL}, nil
}

// stripCommandWord verifies the command begins with the literal word matching
// its script type and returns the remaining tokens.
func stripCommandWord(id, command, word string) ([]string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 || fields[0] != word {
		return nil, scriptErr(ErrMalformedScriptCommand, id, "command must start with %q", word)
	}
	return fields[1:], nil
}

// splitToFlag separates positional tokens from a single optional "--to"
// flag and its value.
func splitToFlag(id string, tokens []string) (positional []string, toURL string, err error) {
	for i := 0; i < len(tokens); i++ {
		if tokens[i] != "--to" {
			positional = append(positional, tokens[i])
			continue
		}
		if i+1 >= len(tokens) {
			return nil, "", scriptErr(ErrMalformedScriptCommand, id, "--to requires a value")
		}
		toURL = tokens[i+1]
		i++
	}
	return positional, toURL, nil
}
