package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dashboard"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateTiming(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService   employee.EmployeeService
	dashboardService  dashboard.DashboardService
	attendanceService attendance.AttendanceService
}

func NewEmployeeHandler(
	employeeService employee.EmployeeService,
	dashboardService dashboard.DashboardService,
	attendanceService attendance.AttendanceService,
) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService:   employeeService,
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler. Non-admins may only fetch themselves.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := identity.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !actor.IsAdmin() && !actor.Owns(id) {
		response.Forbidden(w, "Not authorized to access this employee")
		return
	}

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// UpdateTiming implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateTiming(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateTimingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpdateTiming(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timing updated successfully", emp)
}

// TodayStatus implements EmployeeHandler.
func (h *EmployeeHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.dashboardService.TodayStatus(r.Context(), time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, statuses)
}

// MarkAttendance implements EmployeeHandler.
func (h *EmployeeHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := identity.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	att, err := h.attendanceService.Mark(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", att)
}

// ListAttendance implements EmployeeHandler. Defaults to the trailing 30
// days when no range is given.
func (h *EmployeeHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := identity.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !actor.IsAdmin() && !actor.Owns(id) {
		response.Forbidden(w, "Not authorized to access this employee")
		return
	}

	now := time.Now().UTC()
	rangeStart := now.AddDate(0, 0, -30)
	rangeEnd := now

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			response.BadRequest(w, "startDate must be a YYYY-MM-DD date", nil)
			return
		}
		rangeStart = parsed
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			response.BadRequest(w, "endDate must be a YYYY-MM-DD date", nil)
			return
		}
		rangeEnd = parsed
	}

	records, err := h.attendanceService.History(r.Context(), id, rangeStart, rangeEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
