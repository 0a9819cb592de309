package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
)

// Cookie names used by the replica
const (
	SessionCookie = "session-token"
	flashCookie   = "flash"
)

// flash values
const flashInventoryRequiresLogin = "inventory"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// currentSession returns the session named by the request's cookie
func currentSession(r *http.Request, sessions *repository.SessionRepository) (*repository.Session, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	session, err := sessions.GetSession(cookie.Value)
	if err != nil {
		return nil, false
	}
	return session, true
}

func setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// wantsJSON reports whether the request came from the page's own scripts
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
