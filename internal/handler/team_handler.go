package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbiothmane/POLO341-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamHandler struct {
	svc *service.TeamService
}

func NewTeamHandler(s *service.TeamService) *TeamHandler { return &TeamHandler{svc: s} }

type createTeamRequest struct {
	Name     string   `json:"name"`
	Students []string `json:"students"` // ids hex
}

// @Summary Crear equipo (INSTRUCTOR)
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createTeamRequest true "equipo"
// @Success 201 {object} models.TeamDoc
// @Failure 400 {object} map[string]string
// @Router /teams [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), req.Name, UserIDFromContext(r.Context()), req.Students)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// @Summary Listar equipos
// @Description Instructores ven sus equipos; estudiantes, aquellos donde están.
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.TeamDoc
// @Router /teams [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())

	var (
		teams interface{}
		err   error
	)
	if RoleFromContext(r.Context()) == "instructor" {
		teams, err = h.svc.List(r.Context(), &userID)
	} else {
		teams, err = h.svc.ListByStudent(r.Context(), userID)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(teams)
}

// @Summary Obtener equipo por nombre
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param teamName path string true "nombre del equipo"
// @Success 200 {object} models.TeamDoc
// @Failure 404 {object} map[string]string
// @Router /teams/{teamName} [get]
func (h *TeamHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	t, err := h.svc.GetByName(r.Context(), chi.URLParam(r, "teamName"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			writeMessage(w, http.StatusNotFound, err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(t)
}

// parseObjectIDParam es un helper compartido por los handlers con {id}.
func parseObjectIDParam(r *http.Request, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, name))
}
