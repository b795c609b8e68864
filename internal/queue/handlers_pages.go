package queue

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

type indexPageData struct {
	Songs    []Song
	DJ       bool
	Liked    map[int64]bool
	Disliked map[int64]bool
	Genres   []string
	MyGenre  string
	Summary  Summary
	Flash    *flashMessage
}

type loginPageData struct {
	Flash *flashMessage
}

// handleIndex renders the queue with the caller's own toggle state so
// the buttons reflect what this session already did.
// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r)
	view := s.store.SessionView(claims.SessionID)

	data := indexPageData{
		Songs:    s.store.ListSongs(),
		DJ:       claims.DJ,
		Liked:    view.Liked,
		Disliked: view.Disliked,
		Genres:   Genres,
		MyGenre:  view.Genre,
		Summary:  s.store.GenreSummary(),
		Flash:    popFlash(w, r),
	}
	s.renderPage(w, "index.gohtml", data)
}

// handleLoginPage renders the DJ login form.
// GET /login
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "login.gohtml", loginPageData{Flash: popFlash(w, r)})
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	tpl, err := template.ParseFS(tplFS, "templates/base.gohtml", "templates/"+name)
	if err != nil {
		log.Printf("party-queue: parse template %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	if err := tpl.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("party-queue: render %s: %v", name, err)
	}
}
