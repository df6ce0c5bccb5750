package httpapi

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"xoi-ngoc-web/internal/domain"
	"xoi-ngoc-web/internal/format"
	"xoi-ngoc-web/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu    service.MenuServiceInterface
	MapsURL string
}

func NewHandler(menu service.MenuServiceInterface, mapsURL string) *Handler {
	if mapsURL == "" {
		mapsURL = domain.DefaultMapsURL
	}
	return &Handler{Menu: menu, MapsURL: mapsURL}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.renderPage).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/qr.png", h.siteQR).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/view", h.getMenuView).Methods("GET")
	r.HandleFunc("/api/contact", h.getContact).Methods("GET")
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	view := h.Menu.View(r.Context(), category, query)

	h.Menu.RecordView(r.Context(), r.URL.Path)
	if strings.TrimSpace(query) != "" {
		h.Menu.RecordSearch(r.Context(), query)
	}

	data := pageData{
		View:      view,
		Name:      domain.RestaurantName,
		Tagline:   domain.RestaurantTagline,
		TelURL:    template.URL(format.TelURL(view.Meta.Hotline)),
		ZaloURL:   format.ZaloURL(view.Meta.Hotline),
		MapsURL:   h.MapsURL,
		Facebook:  domain.FacebookURL,
		UpdatedAt: format.FormatDate(view.UpdatedAt),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Printf("[menu-web] failed to render page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	data := h.Menu.Load(r.Context())
	if data == nil {
		http.Error(w, "menu unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getMenuView(w http.ResponseWriter, r *http.Request) {
	view := h.Menu.View(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	meta := domain.FallbackMeta()
	if data := h.Menu.Load(r.Context()); data != nil {
		meta = data.Meta
	}

	response := map[string]string{
		"hotline":    meta.Hotline,
		"tel":        format.TelURL(meta.Hotline),
		"zalo":       format.ZaloURL(meta.Hotline),
		"maps":       h.MapsURL,
		"facebook":   domain.FacebookURL,
		"address":    meta.Address,
		"time_open":  meta.TimeOpen,
		"time_close": meta.TimeClose,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) siteQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Menu.SiteQR(r.Context())
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-web",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
