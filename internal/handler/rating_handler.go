package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sbiothmane/POLO341-sub000/internal/models"
	"github.com/sbiothmane/POLO341-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

// writeMessage responde {"message": ...} con el status dado.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

type submitRatingRequest struct {
	RatedStudent string                `json:"ratedStudent"` // hex
	Ratings      models.RatingScores   `json:"ratings"`
	Comments     models.RatingComments `json:"comments"`
}

// @Summary Enviar/actualizar evaluación de un compañero
// @Description El evaluador sale del token; re-enviar sobreescribe.
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Param teamName path string true "nombre del equipo"
// @Param body body submitRatingRequest true "evaluación"
// @Success 204
// @Router /teams/{teamName}/ratings [post]
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rated, err := primitive.ObjectIDFromHex(req.RatedStudent)
	if err != nil {
		http.Error(w, "invalid ratedStudent id", http.StatusBadRequest)
		return
	}

	err = h.svc.SubmitRating(r.Context(), service.SubmitRatingData{
		TeamName:     chi.URLParam(r, "teamName"),
		Evaluator:    UserIDFromContext(r.Context()),
		RatedStudent: rated,
		Scores:       req.Ratings,
		Comments:     req.Comments,
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrTeamNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotTeamMember), errors.Is(err, service.ErrSelfRating):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// @Summary Vista de detalle: una fila por evaluación del equipo
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Param teamName path string true "nombre del equipo"
// @Success 200 {array} models.RatingDetail
// @Failure 404 {object} map[string]string
// @Router /teams/{teamName}/ratings [get]
func (h *RatingHandler) GetTeamRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rows, err := h.svc.GetTeamRatings(r.Context(), chi.URLParam(r, "teamName"))
	if err != nil {
		h.writeRatingsError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// @Summary Agregar ratings del equipo (contrato {ratings: [...]})
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param teamName path string true "nombre del equipo"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{teamName}/ratings:aggregate [post]
func (h *RatingHandler) AggregateRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// el body {teamName} es redundante con el path; manda el path
	teamName := chi.URLParam(r, "teamName")

	rows, err := h.svc.GetTeamRatings(r.Context(), teamName)
	if err != nil {
		h.writeRatingsError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ratings": rows})
}

// @Summary Resumen por estudiante (promedios por dimensión)
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Param teamName path string true "nombre del equipo"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RatingSummary
// @Failure 404 {object} map[string]string
// @Router /teams/{teamName}/ratings/summary [get]
func (h *RatingHandler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	refresh := r.URL.Query().Get("refresh") == "true"

	summary, err := h.svc.GetTeamSummary(r.Context(), chi.URLParam(r, "teamName"), refresh)
	if err != nil {
		h.writeRatingsError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// writeRatingsError distingue "equipo no existe" (404) de un error real
// del store (500). Ojo: equipo sin ratings NO pasa por acá, eso es 200
// con lista vacía.
func (h *RatingHandler) writeRatingsError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrTeamNotFound) {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	log.Printf("[ratings] fetch falló: %v", err)
	writeMessage(w, http.StatusInternalServerError, err.Error())
}
