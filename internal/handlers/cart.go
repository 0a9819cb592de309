package handlers

import (
	"net/http"

	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
)

// CartHandler handles POST /cart/add and /cart/remove
type CartHandler struct {
	store    services.StoreService
	sessions *repository.SessionRepository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store services.StoreService, sessions *repository.SessionRepository) *CartHandler {
	return &CartHandler{
		store:    store,
		sessions: sessions,
	}
}

// CartResponse carries the cart size after a change
type CartResponse struct {
	Count int `json:"count"`
}

// ServeHTTP updates the cart of the current session
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := currentSession(r, h.sessions)
	if !ok {
		sendErrorResponse(w, "Not logged in", http.StatusUnauthorized)
		return
	}

	id := r.FormValue("id")
	if _, ok := h.store.Product(id); !ok {
		sendErrorResponse(w, "Unknown product "+id, http.StatusNotFound)
		return
	}

	var count int
	var err error
	switch r.URL.Path {
	case "/cart/add":
		count, err = h.sessions.AddToCart(session.Token, id)
	case "/cart/remove":
		count, err = h.sessions.RemoveFromCart(session.Token, id)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		// logged out between lookup and update
		sendErrorResponse(w, "Not logged in", http.StatusUnauthorized)
		return
	}

	sendJSON(w, http.StatusOK, CartResponse{Count: count})
}
