package handlers

import (
	"net/http"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/dto"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// ClientHandler handles HTTP requests for client CRUD.
type ClientHandler struct {
	svc ports.ClientService
}

// NewClientHandler creates a new ClientHandler with the given service port.
func NewClientHandler(svc ports.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// ListClients handles GET /api/v1/clients. With ?active=true only active
// clients are returned.
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := parseBoolQuery(r, "active")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var clients []client.Client
	if activeOnly {
		clients, err = h.svc.ListActive(r.Context())
	} else {
		clients, err = h.svc.List(r.Context())
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToClientListResponse(clients))
}

// CreateClient handles POST /api/v1/clients.
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.Params())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToClientResponse(created))
}

// GetClient handles GET /api/v1/clients/{id}.
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToClientDetailResponse(d))
}

// UpdateClient handles PATCH /api/v1/clients/{id}.
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToClientResponse(updated))
}

// DeleteClient handles DELETE /api/v1/clients/{id}.
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
