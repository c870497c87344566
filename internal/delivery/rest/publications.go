package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

const publicationNotFound = "Publication not found"

type publicationBody struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	MonthlyPrice string `json:"monthlyPrice"`
}

type publicationPatchBody struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	MonthlyPrice *string `json:"monthlyPrice"`
}

func (h *Handler) listPublications(w http.ResponseWriter, r *http.Request) {

	resp, err := h.useCase.ListPublications(r.Context())
	if err != nil {
		respondError(w, err, publicationNotFound)
		return
	}

	writeJSON(w, http.StatusOK, resp.Publications)
}

func (h *Handler) getPublication(w http.ResponseWriter, r *http.Request) {

	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, publicationNotFound)
		return
	}

	resp, err := h.useCase.GetPublication(r.Context(), usecase.GetPublicationRequest{ID: id})
	if err != nil {
		respondError(w, err, publicationNotFound)
		return
	}

	writeJSON(w, http.StatusOK, resp.Publication)
}

func (h *Handler) createPublication(w http.ResponseWriter, r *http.Request, client usecase.AuthClient) {

	var body publicationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.useCase.CreatePublication(r.Context(), usecase.CreatePublicationRequest{
		Client:       client,
		Title:        body.Title,
		Description:  body.Description,
		ImageURL:     body.ImageURL,
		MonthlyPrice: body.MonthlyPrice,
	})
	if err != nil {
		respondError(w, err, publicationNotFound)
		return
	}

	log.Printf("publication %s created by user %s", resp.Publication.ID, client.UserID)

	writeJSON(w, http.StatusCreated, resp.Publication)
}

func (h *Handler) updatePublication(w http.ResponseWriter, r *http.Request, client usecase.AuthClient) {

	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	var body publicationPatchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.useCase.UpdatePublication(r.Context(), usecase.UpdatePublicationRequest{
		Client:       client,
		ID:           id,
		Title:        body.Title,
		Description:  body.Description,
		ImageURL:     body.ImageURL,
		MonthlyPrice: body.MonthlyPrice,
	})
	if err != nil {
		respondError(w, err, publicationNotFound)
		return
	}

	writeJSON(w, http.StatusOK, resp.Publication)
}

func (h *Handler) deletePublication(w http.ResponseWriter, r *http.Request, client usecase.AuthClient) {

	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusInternalServerError, "invalid publication id")
		return
	}

	if err := h.useCase.DeletePublication(r.Context(), usecase.DeletePublicationRequest{
		Client: client,
		ID:     id,
	}); err != nil {
		respondError(w, err, publicationNotFound)
		return
	}

	log.Printf("publication %s deleted by user %s", id, client.UserID)

	w.WriteHeader(http.StatusNoContent)
}
