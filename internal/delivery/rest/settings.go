package rest

import (
	"encoding/json"
	"net/http"

	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

type settingsBody struct {
	SiteTitle      *string `json:"siteTitle"`
	HeroImage      *string `json:"heroImage"`
	WhatsappNumber *string `json:"whatsappNumber"`
}

func (h *Handler) getWhatsappNumber(w http.ResponseWriter, r *http.Request) {

	number, err := h.useCase.GetWhatsappNumber(r.Context())
	if err != nil {
		respondError(w, err, "setting not found")
		return
	}

	writeJSON(w, http.StatusOK, number)
}

func (h *Handler) getSiteSettings(w http.ResponseWriter, r *http.Request) {

	resp, err := h.useCase.GetSiteSettings(r.Context())
	if err != nil {
		respondError(w, err, "setting not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getAllSettings(w http.ResponseWriter, r *http.Request) {

	settings, err := h.useCase.GetAllSettings(r.Context())
	if err != nil {
		respondError(w, err, "setting not found")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request, client usecase.AuthClient) {

	var body settingsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.useCase.SaveSettings(r.Context(), usecase.SaveSettingsRequest{
		Client:         client,
		SiteTitle:      body.SiteTitle,
		HeroImage:      body.HeroImage,
		WhatsappNumber: body.WhatsappNumber,
	}); err != nil {
		respondError(w, err, "setting not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
