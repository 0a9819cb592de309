package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
)

// InventoryHandler serves the product listing to logged-in visitors
type InventoryHandler struct {
	template *template.Template
	store    services.StoreService
	sessions *repository.SessionRepository
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(templatePath string, store services.StoreService, sessions *repository.SessionRepository) (*InventoryHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &InventoryHandler{
		template: tmpl,
		store:    store,
		sessions: sessions,
	}, nil
}

// InventoryItem is one product row
type InventoryItem struct {
	ID          string
	Name        string
	Description string
	Price       string
	PriceCents  int64
	InCart      bool
}

// SortChoice is one option of the sort control
type SortChoice struct {
	Value    string
	Label    string
	Selected bool
}

// InventoryData represents the data for the inventory template
type InventoryData struct {
	Username    string
	Products    []InventoryItem
	SortOptions []SortChoice
	ActiveLabel string
	CartCount   int
}

// ServeHTTP handles GET /inventory.html
func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := currentSession(r, h.sessions)
	if !ok {
		setCookie(w, flashCookie, flashInventoryRequiresLogin)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	order := services.ParseSortOrder(r.URL.Query().Get("sort"))
	data := InventoryData{
		Username:    session.Username,
		ActiveLabel: order.Label(),
		CartCount:   len(session.Cart),
	}
	for _, o := range services.SortOrders() {
		data.SortOptions = append(data.SortOptions, SortChoice{
			Value:    string(o),
			Label:    o.Label(),
			Selected: o == order,
		})
	}
	for _, p := range h.store.Products(order) {
		data.Products = append(data.Products, InventoryItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.FormattedPrice(),
			PriceCents:  p.PriceCents,
			InCart:      session.InCart(p.ID),
		})
	}

	if err := h.template.Execute(w, data); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
