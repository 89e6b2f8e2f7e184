// Package entrypoints discovers additional known entrypoints by scanning
// mounted HTML for script references. The compiler itself performs no I/O;
// the dev command feeds the scan results into the compiler input.
package entrypoints

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ScanHTML extracts the src attributes of <script> elements from an HTML
// document. External URLs are skipped; only on-disk entrypoints are
// returned, in document order without duplicates.
func ScanHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var found []string

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			if src := attr(n, "src"); src != "" && !isExternal(src) && !seen[src] {
				seen[src] = true
				found = append(found, src)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return found, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isExternal(src string) bool {
	return strings.Contains(src, "://") || strings.HasPrefix(src, "//")
}
