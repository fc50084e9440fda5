package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdl-lex/gridbridge"
	"github.com/pdl-lex/gridbridge/grid"
)

func newTestComponent() *gridbridge.Component {
	c := gridbridge.New(&grid.Options{
		ColumnDefs: []grid.Column{
			grid.ColumnDef{Field: "name"},
			grid.ColumnDef{Field: "age"},
		},
	})
	c.ID = "grid-test"
	return c
}

func TestRenderContainer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderContainer(&buf, newTestComponent(), "/ws"))

	html := buf.String()
	assert.Contains(t, html, `id="grid-test"`)
	assert.Contains(t, html, "ag-theme-quartz")
	assert.Contains(t, html, "width:100%")
	assert.Contains(t, html, "height:400px")
	assert.Contains(t, html, `data-grid-endpoint="/ws"`)
	assert.Contains(t, html, "columnDefs")
}

func TestRenderContainerDarkTheme(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	c := newTestComponent()
	c.Theme = grid.ThemeBalham
	c.DarkMode = true

	var buf bytes.Buffer
	require.NoError(t, r.RenderContainer(&buf, c, "/ws"))
	assert.Contains(t, buf.String(), "ag-theme-balham-dark")
}

func TestRenderPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, "Employees", newTestComponent(), "/ws"))

	html := buf.String()
	assert.Contains(t, html, "<title>Employees</title>")
	assert.Contains(t, html, `id="grid-test"`)
	assert.Contains(t, html, "ag-grid-community")
	assert.Contains(t, html, "gridbridge.js")
}

func TestViewModelEscaping(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	c := gridbridge.New(&grid.Options{
		RowData: []map[string]interface{}{
			{"name": `<script>alert("x")</script>`},
		},
	})
	c.ID = "grid-test"

	var buf bytes.Buffer
	require.NoError(t, r.RenderContainer(&buf, c, "/ws"))
	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestShimJS(t *testing.T) {
	js := ShimJS()
	require.NotEmpty(t, js)
	assert.Contains(t, string(js), "data-grid-endpoint")
	assert.Contains(t, string(js), "WebSocket")
}
