package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbiothmane/POLO341-sub000/internal/service"

	"github.com/gorilla/websocket"
)

type PollHandler struct {
	svc *service.PollService
}

func NewPollHandler(s *service.PollService) *PollHandler { return &PollHandler{svc: s} }

type createPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// @Summary Crear encuesta (INSTRUCTOR)
// @Tags polls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createPollRequest true "encuesta"
// @Success 201 {object} models.PollDoc
// @Failure 400 {object} map[string]string
// @Router /polls [post]
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), req.Question, req.Options)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Listar encuestas
// @Tags polls
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PollDoc
// @Router /polls [get]
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	polls, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(polls)
}

type voteRequest struct {
	Option int `json:"option"`
}

// @Summary Votar (re-votar sobreescribe)
// @Tags polls
// @Security BearerAuth
// @Accept json
// @Param id path string true "id de la encuesta (hex)"
// @Param body body voteRequest true "opción elegida (índice)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /polls/{id}/vote [post]
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseObjectIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Vote(r.Context(), id, UserIDFromContext(r.Context()), req.Option); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Resultados de la encuesta
// @Tags polls
// @Security BearerAuth
// @Produce json
// @Param id path string true "id de la encuesta (hex)"
// @Success 200 {object} models.PollResults
// @Router /polls/{id}/results [get]
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseObjectIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Results(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Cerrar encuesta (INSTRUCTOR, solo el creador)
// @Tags polls
// @Security BearerAuth
// @Param id path string true "id de la encuesta (hex)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /polls/{id}/close [post]
func (h *PollHandler) Close(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseObjectIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Close(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Resultados en tiempo real (WebSocket)
// @Description Manda un snapshot al conectar y luego cada 2 segundos.
// @Tags polls
// @Produce json
// @Param id path string true "id de la encuesta (hex)"
// @Success 200 {object} map[string]interface{}
// @Router /polls/{id}/ws [get]
func (h *PollHandler) ResultsWS(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, mandando resultados…",
	})

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		res, err := h.svc.Results(r.Context(), id)
		if err != nil {
			conn.WriteJSON(map[string]any{
				"type":  "error",
				"error": err.Error(),
			})
			return
		}

		if err := conn.WriteJSON(map[string]any{
			"type":    "results",
			"results": res,
			"sentAt":  time.Now(),
		}); err != nil {
			// cliente cerró
			return
		}

		// encuesta cerrada: último snapshot y chau
		if res.Closed {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
