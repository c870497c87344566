package rest

import (
	"net/http"

	"github.com/vitrine-lab/vitrineserv/internal/auth"
	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

type Handler struct {
	useCase  usecase.Interface
	verifier TokenVerifier
}

func NewHandler(useCase usecase.Interface, verifier TokenVerifier) *Handler {
	return &Handler{
		useCase:  useCase,
		verifier: verifier,
	}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /api/publications", h.listPublications)
	mux.HandleFunc("GET /api/publications/{id}", h.getPublication)
	mux.HandleFunc("POST /api/publications", h.requireAuth(h.createPublication))
	mux.HandleFunc("PATCH /api/publications/{id}", h.requireAuth(h.updatePublication))
	mux.HandleFunc("DELETE /api/publications/{id}", h.requireAuth(h.deletePublication))

	mux.HandleFunc("GET /api/settings/whatsapp", h.getWhatsappNumber)
	mux.HandleFunc("GET /api/settings/site", h.getSiteSettings)
	mux.HandleFunc("GET /api/settings/all", h.getAllSettings)
	mux.HandleFunc("POST /api/settings", h.requireAuth(h.saveSettings))

	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.updateCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.deleteCartItem)
	mux.HandleFunc("DELETE /api/cart", h.clearCart)

	mux.HandleFunc("POST /api/checkout", h.checkout)

	return mux
}
