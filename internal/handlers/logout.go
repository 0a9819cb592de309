package handlers

import (
	"log"
	"net/http"

	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
)

// LogoutHandler ends the current session and returns to the login page
type LogoutHandler struct {
	sessions *repository.SessionRepository
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions *repository.SessionRepository) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// ServeHTTP handles GET /logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if session, ok := currentSession(r, h.sessions); ok {
		h.sessions.DeleteSession(session.Token)
		log.Printf("User %s logged out", session.Username)
	}
	clearCookie(w, SessionCookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
