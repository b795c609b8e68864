package queue

import (
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// handleLogin checks the shared DJ password and, on success, reissues the
// session cookie with the DJ capability set. The session ID is kept so
// the DJ's own likes and genre vote survive the login.
// POST /login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	if err := bcrypt.CompareHashAndPassword(s.djHash, []byte(password)); err != nil {
		setFlash(w, flashError, "Falsches Passwort.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	claims := sessionFrom(r)
	claims.DJ = true
	if err := s.issueSession(w, claims); err != nil {
		log.Printf("party-queue: login: issue session: %v", err)
		setFlash(w, flashError, "Interner Fehler.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setFlash(w, flashSuccess, "Erfolgreich als DJ eingeloggt.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout drops the DJ capability, nothing else.
// POST /logout
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r)
	claims.DJ = false
	if err := s.issueSession(w, claims); err != nil {
		log.Printf("party-queue: logout: issue session: %v", err)
		setFlash(w, flashError, "Interner Fehler.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, flashSuccess, "Abgemeldet.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
