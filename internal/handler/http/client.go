package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hrcore/leave-backend-go/internal/domain/client"
	"github.com/hrcore/leave-backend-go/internal/handler/http/response"
	clientsvc "github.com/hrcore/leave-backend-go/internal/service/client"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetSecret(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService *clientsvc.ClientService
}

func NewClientHandler(clientService *clientsvc.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	claims, err := requestClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	c, err := h.clientService.Create(r.Context(), req, claimString(claims, "user_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", client.NewClientResponse(c))
}

// Update implements ClientHandler.
func (h *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.clientService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", client.NewClientResponse(c))
}

// Delete implements ClientHandler.
func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	clients, err := h.clientService.List(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, client.NewClientResponse(c))
	}

	response.SuccessWithMeta(w, resp, &response.Meta{
		Limit:      limit,
		TotalItems: int64(len(resp)),
	})
}

// GetSecret implements ClientHandler.
func (h *ClientHandlerImpl) GetSecret(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	secret, err := h.clientService.GetSecret(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, secret)
}
