package entrypoints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanHTML(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head>
  <script type="module" src="/src/index.js"></script>
  <script src="https://cdn.example.com/analytics.js"></script>
</head>
<body>
  <script src="/src/admin.js"></script>
  <script src="/src/index.js"></script>
  <script>console.log("inline");</script>
</body>
</html>`

	found, err := ScanHTML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"/src/index.js", "/src/admin.js"}, found)
}

func TestScanHTMLEmptyDocument(t *testing.T) {
	found, err := ScanHTML(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanHTMLSkipsProtocolRelative(t *testing.T) {
	found, err := ScanHTML(strings.NewReader(`<script src="//cdn.example.com/lib.js"></script>`))
	require.NoError(t, err)
	assert.Empty(t, found)
}
