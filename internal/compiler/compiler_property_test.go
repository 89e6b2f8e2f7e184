//go:build property
// +build property

package compiler

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// scriptsFromNames builds a valid script map from generated identifiers,
// spreading entries across mount, run, and build types with disjoint
// extensions.
func scriptsFromNames(names []string) map[string]string {
	exts := []string{"css", "vue", "svelte", "md"}
	scripts := make(map[string]string)
	for i, name := range names {
		switch i % 3 {
		case 0:
			scripts["mount:"+name] = "mount " + name
		case 1:
			scripts["run:"+name] = "echo " + name
		case 2:
			scripts["build:"+exts[i%len(exts)]] = name + " --stdin"
		}
	}
	return scripts
}

func TestCompilerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	namesGen := gen.SliceOfN(6, gen.RegexMatch(`^[a-z][a-z0-9]{0,8}$`))

	// Property: the web_modules mount sorts first for every valid input.
	properties.Property("web_modules sorts first", prop.ForAll(
		func(names []string) bool {
			plan, err := Compile(Input{Mode: ModeDevelopment, Scripts: scriptsFromNames(names)})
			if err != nil {
				return false
			}
			return len(plan.Scripts) > 0 && plan.Scripts[0].ID == WebModulesScriptID
		},
		namesGen,
	))

	// Property: compiling the same input twice yields structurally identical
	// plans.
	properties.Property("compilation is idempotent", prop.ForAll(
		func(names []string) bool {
			input := Input{Mode: ModeDevelopment, Scripts: scriptsFromNames(names)}
			first, err1 := Compile(input)
			second, err2 := Compile(input)
			if err1 != nil || err2 != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		namesGen,
	))

	// Property: no two build entries share a match token.
	properties.Property("build extensions are pairwise disjoint", prop.ForAll(
		func(names []string) bool {
			plan, err := Compile(Input{Mode: ModeDevelopment, Scripts: scriptsFromNames(names)})
			if err != nil {
				return false
			}
			seen := make(map[string]bool)
			for _, script := range plan.Scripts {
				if script.Type != ScriptBuild {
					continue
				}
				for _, ext := range script.Match {
					if seen[ext] {
						return false
					}
					seen[ext] = true
				}
			}
			return true
		},
		namesGen,
	))

	// Property: a plan never contains more than one bundle entry.
	properties.Property("at most one bundle entry", prop.ForAll(
		func(names []string) bool {
			plan, err := Compile(Input{Mode: ModeDevelopment, Scripts: scriptsFromNames(names)})
			if err != nil {
				return false
			}
			bundles := 0
			for _, script := range plan.Scripts {
				if script.Type == ScriptBundle {
					bundles++
				}
			}
			return bundles <= 1
		},
		namesGen,
	))

	properties.TestingRun(t)
}
