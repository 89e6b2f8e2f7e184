// Package builtin contains the plugins that ship with drift itself. They are
// registered by the host, never declared by the user.
package builtin

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/driftdev/drift/internal/plugins"
)

// TranspilerName is the module reference of the built-in transpiler. It is
// not a module path (no leading "@" or "."), so the compiler never tries to
// resolve it against user-registered plugins.
const TranspilerName = "drift:transpile"

// bare import specifiers inside static import/export statements, e.g.
// `import React from "react"`. Relative and absolute specifiers are left
// untouched.
var importSpecifier = regexp.MustCompile(`((?:import|export)[^'"]*?from\s*['"])([^'"]+)(['"])`)

// Transpiler is the transform plugin pre-bound to the implicit default build
// script. In dev mode it rewrites bare import specifiers to their
// /web_modules/ URLs so browsers can resolve npm packages as ES modules.
type Transpiler struct{}

// NewTranspiler returns the built-in transpiler plugin.
func NewTranspiler() *Transpiler {
	return &Transpiler{}
}

// Name returns the built-in module reference.
func (t *Transpiler) Name() string {
	return TranspilerName
}

// Transform rewrites bare import specifiers in JavaScript output. Source
// files outside the JS family pass through unchanged.
func (t *Transpiler) Transform(_ context.Context, req plugins.TransformRequest) (*plugins.TransformResult, error) {
	if !isScriptURL(req.URLPath) {
		return &plugins.TransformResult{Contents: req.Contents}, nil
	}

	rewritten := importSpecifier.ReplaceAllFunc(req.Contents, func(match []byte) []byte {
		parts := importSpecifier.FindSubmatch(match)
		spec := string(parts[2])
		if strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/") || strings.Contains(spec, "://") {
			return match
		}
		return []byte(fmt.Sprintf("%s/web_modules/%s.js%s", parts[1], spec, parts[3]))
	})

	return &plugins.TransformResult{Contents: rewritten}, nil
}

func isScriptURL(urlPath string) bool {
	for _, ext := range []string{".js", ".jsx", ".ts", ".tsx", ".mjs"} {
		if strings.HasSuffix(urlPath, ext) {
			return true
		}
	}
	return false
}
