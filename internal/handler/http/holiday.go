package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrcore/leave-backend-go/internal/domain/holiday"
	"github.com/hrcore/leave-backend-go/internal/handler/http/response"
	holidaysvc "github.com/hrcore/leave-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holidaysvc.HolidayService
}

func NewHolidayHandler(holidayService *holidaysvc.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
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

	hol, err := h.holidayService.Create(r.Context(), req, claimString(claims, "email"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", holiday.NewHolidayResponse(hol))
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update holiday decode error", "error", err)
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

	hol, err := h.holidayService.Update(r.Context(), id, req, claimString(claims, "email"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated successfully", holiday.NewHolidayResponse(hol))
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	claims, err := requestClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.holidayService.Delete(r.Context(), id, claimString(claims, "email")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter holiday.ListFilter
	filter.Year, _ = strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))
	filter.Month = time.Month(month)
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	holidays, err := h.holidayService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		resp = append(resp, holiday.NewHolidayResponse(hol))
	}

	response.SuccessWithMeta(w, resp, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: int64(len(resp)),
	})
}
