// Package render emits the mount-time markup for grid components: a
// themed container carrying the serialized grid options, and the page
// scaffolding used by standalone servers. All HTML goes through
// safehtml templates.
package render

import (
	"embed"
	"io"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"

	"github.com/pdl-lex/gridbridge"
	intjson "github.com/pdl-lex/gridbridge/internal/json"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed templates/shim.js
var shimJS []byte

// ShimJS returns the browser shim that mounts widgets and streams their
// events to the bridge. Serve it at the path the page template references.
func ShimJS() []byte {
	return shimJS
}

// ContainerViewModel feeds the container template.
type ContainerViewModel struct {
	ContainerID safehtml.Identifier
	ThemeClass  string
	Style       safehtml.Style
	OptionsJSON string
	Endpoint    string
}

// PageViewModel feeds the standalone page template.
type PageViewModel struct {
	Title     string
	Container ContainerViewModel
}

// Renderer renders grid components to HTML.
type Renderer struct {
	containerTemplate *template.Template
	pageTemplate      *template.Template
}

// NewRenderer creates a Renderer with the embedded templates parsed.
func NewRenderer() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	containerTemplate, err := template.New("container.html").ParseFS(trustedFS, "templates/container.html")
	if err != nil {
		return nil, err
	}

	pageTemplate, err := template.New("page.html").ParseFS(trustedFS, "templates/page.html", "templates/container.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		containerTemplate: containerTemplate,
		pageTemplate:      pageTemplate,
	}, nil
}

// ViewModel builds the container view model for a component. endpoint is
// the bridge's WebSocket path.
func ViewModel(c *gridbridge.Component, endpoint string) (ContainerViewModel, error) {
	opts, err := intjson.Marshal(c.Options)
	if err != nil {
		return ContainerViewModel{}, err
	}

	style := safehtml.StyleFromProperties(safehtml.StyleProperties{
		Width:  c.Width,
		Height: c.Height,
	})

	return ContainerViewModel{
		ContainerID: uncheckedconversions.IdentifierFromStringKnownToSatisfyTypeContract(c.ID),
		ThemeClass:  c.ThemeClass(),
		Style:       style,
		OptionsJSON: string(opts),
		Endpoint:    endpoint,
	}, nil
}

// RenderContainer renders the component's container div.
func (r *Renderer) RenderContainer(w io.Writer, c *gridbridge.Component, endpoint string) error {
	vm, err := ViewModel(c, endpoint)
	if err != nil {
		return err
	}
	return r.containerTemplate.Execute(w, vm)
}

// RenderPage renders a complete page hosting one component.
func (r *Renderer) RenderPage(w io.Writer, title string, c *gridbridge.Component, endpoint string) error {
	vm, err := ViewModel(c, endpoint)
	if err != nil {
		return err
	}
	return r.pageTemplate.Execute(w, PageViewModel{Title: title, Container: vm})
}
