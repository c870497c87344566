package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

type checkoutBody struct {
	Name          string `json:"name"`
	City          string `json:"city"`
	Observation   string `json:"observation"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {

	var body checkoutBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := sessionID(w, r)

	resp, err := h.useCase.Checkout(r.Context(), usecase.CheckoutRequest{
		SessionID: session,
		CheckoutData: usecase.CheckoutData{
			Name:          body.Name,
			City:          body.City,
			Observation:   body.Observation,
			PaymentMethod: body.PaymentMethod,
		},
	})
	if err != nil {
		respondError(w, err, "cart not found")
		return
	}

	log.Printf("checkout dispatched for session %s", session)

	writeJSON(w, http.StatusOK, resp)
}
