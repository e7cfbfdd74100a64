package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hrcore/leave-backend-go/internal/domain/leave"
	"github.com/hrcore/leave-backend-go/internal/domain/user"
	"github.com/hrcore/leave-backend-go/internal/handler/http/response"
	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
	employeesvc "github.com/hrcore/leave-backend-go/internal/service/employee"
	leavesvc "github.com/hrcore/leave-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requestService  *leavesvc.RequestService
	employeeService *employeesvc.EmployeeService
}

func NewLeaveHandler(requestService *leavesvc.RequestService, employeeService *employeesvc.EmployeeService) LeaveHandler {
	return &LeaveHandlerImpl{
		requestService:  requestService,
		employeeService: employeeService,
	}
}

// ownsEmployee reports whether the token's linked employee record matches
// the given business employee ID. Admin and HR can act on any employee.
func (h *LeaveHandlerImpl) ownsEmployee(r *http.Request, claims map[string]interface{}, empID string) (bool, error) {
	role := user.Role(claimString(claims, "role"))
	if role == user.RoleAdmin || role == user.RoleHR || role == user.RoleManager {
		return true, nil
	}

	linkedID := claimString(claims, "employee_id")
	if linkedID == "" {
		return false, nil
	}

	emp, err := h.employeeService.GetByEmpID(r.Context(), empID)
	if err != nil {
		return false, err
	}
	return emp.ID == linkedID, nil
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
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

	owns, err := h.ownsEmployee(r, claims, req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !owns {
		response.Forbidden(w, "Cannot apply leave for another employee")
		return
	}

	lv, err := h.requestService.Apply(r.Context(), req, claimString(claims, "email"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave applied successfully", leave.NewLeaveResponse(lv))
}

// Resolve implements LeaveHandler.
func (h *LeaveHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req leave.ResolveLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Resolve leave decode error", "error", err)
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

	lv, err := h.requestService.Resolve(r.Context(), req.LeaveID, req.Approve, claimString(claims, "email"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave rejected successfully"
	if req.Approve {
		message = "Leave approved successfully"
	}
	response.SuccessWithMessage(w, message, leave.NewLeaveResponse(lv))
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, err := requestClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	q := r.URL.Query()
	empID := q.Get("employee_id")

	role := user.Role(claimString(claims, "role"))
	if role == user.RoleEmployee {
		if empID == "" {
			response.BadRequest(w, "employee_id is required", nil)
			return
		}
		owns, err := h.ownsEmployee(r, claims, empID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !owns {
			response.Forbidden(w, "Cannot list leaves of another employee")
			return
		}
	}

	var fromDate, toDate *time.Time
	if v := q.Get("from"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		fromDate = &d
	}
	if v := q.Get("to"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		toDate = &d
	}

	status := leave.LeaveStatus(q.Get("status"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	leaves, err := h.requestService.List(r.Context(), empID, status, fromDate, toDate, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		resp = append(resp, leave.NewLeaveResponse(lv))
	}

	response.SuccessWithMeta(w, resp, &response.Meta{
		Limit:      limit,
		TotalItems: int64(len(resp)),
	})
}
