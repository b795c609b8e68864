package queue

import (
	"encoding/json"
	"errors"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

// redirectError recovers a domain error at the form boundary: the message
// becomes an error flash and the guest lands back on the queue page. A
// missing DJ capability redirects to the login form instead, the way the
// original guard did.
func (s *Server) redirectError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *forbiddenError
	if errors.As(err, &fe) {
		setFlash(w, flashError, fe.msg)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	setFlash(w, flashError, err.Error())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
