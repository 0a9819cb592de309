package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
)

// LoginHandler serves the login form on / and /index.html
type LoginHandler struct {
	template *template.Template
	store    services.StoreService
	sessions *repository.SessionRepository
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(templatePath string, store services.StoreService, sessions *repository.SessionRepository) (*LoginHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &LoginHandler{
		template: tmpl,
		store:    store,
		sessions: sessions,
	}, nil
}

// LoginData represents the data for the login template
type LoginData struct {
	Username string
	Password string
	Error    string
}

// LoginResponse is sent to the login form's script after a successful login
type LoginResponse struct {
	Redirect string `json:"redirect"`
}

// ServeHTTP handles GET and POST on the login page
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, LoginData{Error: h.takeFlash(w, r)})
	case http.MethodPost:
		h.login(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	data := LoginData{
		Username: r.PostFormValue("user-name"),
		Password: r.PostFormValue("password"),
	}

	err := h.store.Authenticate(data.Username, data.Password)
	var loginErr *services.LoginError
	if errors.As(err, &loginErr) {
		log.Printf("Login rejected for %q: %s", data.Username, loginErr.Message)
		if wantsJSON(r) {
			sendErrorResponse(w, loginErr.Message, http.StatusUnauthorized)
			return
		}
		data.Error = loginErr.Message
		h.render(w, data)
		return
	}
	if err != nil {
		log.Printf("Error authenticating: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	session := h.sessions.CreateSession(data.Username)
	setCookie(w, SessionCookie, session.Token)
	log.Printf("User %s logged in", data.Username)

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, LoginResponse{Redirect: "/inventory.html"})
		return
	}
	http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
}

// takeFlash returns and clears the message left by a redirect to the login page
func (h *LoginHandler) takeFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	clearCookie(w, flashCookie)

	if cookie.Value == flashInventoryRequiresLogin {
		return services.MsgInventoryRequiresLogin
	}
	return ""
}

func (h *LoginHandler) render(w http.ResponseWriter, data LoginData) {
	if err := h.template.Execute(w, data); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
