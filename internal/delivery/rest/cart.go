package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

const sessionHeader = "X-Session-ID"

// sessionID resolves the cart session for the request. A client that
// shows up without one gets a fresh id, echoed back so it can be
// reused on the next call.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

type addCartItemBody struct {
	PublicationID string `json:"publicationId"`
	Title         string `json:"title"`
	ImageURL      string `json:"imageUrl"`
	MonthlyPrice  string `json:"monthlyPrice"`
}

type updateCartItemBody struct {
	Quantity int32 `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {

	resp, err := h.useCase.GetCart(r.Context(), usecase.GetCartRequest{SessionID: sessionID(w, r)})
	if err != nil {
		respondError(w, err, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {

	var body addCartItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.PublicationID) == "" {
		writeError(w, http.StatusBadRequest, "publicationId is required")
		return
	}

	resp, err := h.useCase.AddItemToCart(r.Context(), usecase.AddItemToCartRequest{
		SessionID:     sessionID(w, r),
		PublicationID: body.PublicationID,
		Title:         body.Title,
		ImageURL:      body.ImageURL,
		MonthlyPrice:  body.MonthlyPrice,
	})
	if err != nil {
		respondError(w, err, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {

	var body updateCartItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.useCase.UpdateCartItem(r.Context(), usecase.UpdateCartItemRequest{
		SessionID:     sessionID(w, r),
		PublicationID: r.PathValue("id"),
		Quantity:      body.Quantity,
	})
	if err != nil {
		respondError(w, err, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteCartItem(w http.ResponseWriter, r *http.Request) {

	resp, err := h.useCase.DeleteItemFromCart(r.Context(), usecase.DeleteItemFromCartRequest{
		SessionID:     sessionID(w, r),
		PublicationID: r.PathValue("id"),
	})
	if err != nil {
		respondError(w, err, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {

	if err := h.useCase.ClearCart(r.Context(), usecase.ClearCartRequest{SessionID: sessionID(w, r)}); err != nil {
		respondError(w, err, "cart not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
