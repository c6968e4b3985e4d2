package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sbiothmane/POLO341-sub000/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfficeHourHandler struct {
	svc *service.OfficeHourService
}

func NewOfficeHourHandler(s *service.OfficeHourService) *OfficeHourHandler {
	return &OfficeHourHandler{svc: s}
}

type createOfficeHourRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
}

// @Summary Crear bloque de horario de atención (INSTRUCTOR)
// @Tags office-hours
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createOfficeHourRequest true "bloque"
// @Success 201 {object} models.OfficeHourDoc
// @Failure 400 {object} map[string]string
// @Router /office-hours [post]
func (h *OfficeHourHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createOfficeHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	oh, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), service.CreateOfficeHourData{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(oh)
}

// @Summary Listar horarios de atención
// @Tags office-hours
// @Security BearerAuth
// @Produce json
// @Param instructor query string false "filtrar por instructor (id hex)"
// @Success 200 {array} models.OfficeHourDoc
// @Router /office-hours [get]
func (h *OfficeHourHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var instructor *primitive.ObjectID
	if raw := r.URL.Query().Get("instructor"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			http.Error(w, "invalid instructor id", http.StatusBadRequest)
			return
		}
		instructor = &id
	}

	hours, err := h.svc.List(r.Context(), instructor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(hours)
}

// @Summary Borrar bloque propio (INSTRUCTOR)
// @Tags office-hours
// @Security BearerAuth
// @Param id path string true "id del bloque (hex)"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /office-hours/{id} [delete]
func (h *OfficeHourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseObjectIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid office hour id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
