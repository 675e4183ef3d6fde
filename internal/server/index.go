package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed index.html.tmpl
var indexSource string

var indexTemplate = template.Must(template.New("index").Parse(indexSource))

// iconStylesheet provides the fa-eye / fa-eye-slash glyphs on the toggle icons.
const iconStylesheet = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"

type indexData struct {
	Title          string
	MountID        string
	IconStylesheet string
}

// renderIndex renders the host page once; it only depends on configuration.
// The body's data-mount attribute tells the WASM program where to mount.
func renderIndex(mountID string) ([]byte, error) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexData{
		Title:          "Sign Up",
		MountID:        mountID,
		IconStylesheet: iconStylesheet,
	})
	if err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}

func indexHandler(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(page)
	}
}
