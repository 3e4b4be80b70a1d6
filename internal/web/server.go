// Package web is the alternate rendering path: it serves a static page that
// embeds the raw input text and renders the tree client-side. It consumes
// the raw text, never the parsed document set.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var assetsFS embed.FS

type ServerConfig struct {
	// Source is the display name of the input (file name or "stdin").
	Source string
	// RawText is the unparsed input blob embedded into the page.
	RawText string
	// TruncateLimit caps string previews in the client-side renderer.
	TruncateLimit int
}

type Server struct {
	cfg  ServerConfig
	tmpl *template.Template
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.TruncateLimit < 1 {
		return nil, errors.New("web: truncate limit must be >= 1")
	}
	if strings.TrimSpace(cfg.Source) == "" {
		cfg.Source = "stdin"
	}
	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, tmpl: tmpl}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Template auto-escaping covers the <script>-sequence requirement for
	// the embedded raw text.
	err := s.tmpl.ExecuteTemplate(w, "index.html", map[string]any{
		"Source": s.cfg.Source,
		"Raw":    s.cfg.RawText,
		"Limit":  s.cfg.TruncateLimit,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
