package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	CurrentEmployees(w http.ResponseWriter, r *http.Request)
	Initialize(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
	employeeRepo employee.EmployeeRepository
}

func NewShiftHandler(shiftService shift.ShiftService, employeeRepo employee.EmployeeRepository) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService, employeeRepo: employeeRepo}
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sh, err := h.shiftService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sh)
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sh, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", sh)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sh, err := h.shiftService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", sh)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// Current implements ShiftHandler. A gap in the catalog is reported as data,
// not as an error status.
func (h *ShiftHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	sh, err := h.shiftService.CurrentShift(r.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, shift.ErrNoActiveShift) {
			response.Success(w, nil)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, sh)
}

// CurrentEmployees implements ShiftHandler. Flexible employees belong to
// every shift's floor, so they ride along with whichever shift is current.
func (h *ShiftHandlerImpl) CurrentEmployees(w http.ResponseWriter, r *http.Request) {
	codes := []string{employee.ShiftFlexible}

	sh, err := h.shiftService.CurrentShift(r.Context(), time.Now().UTC())
	if err != nil && !errors.Is(err, shift.ErrNoActiveShift) {
		response.HandleError(w, err)
		return
	}
	if err == nil {
		codes = append(codes, sh.Code)
	}

	employees, err := h.employeeRepo.ListActiveByShifts(r.Context(), codes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	names := make([]map[string]string, 0, len(employees))
	for _, emp := range employees {
		names = append(names, map[string]string{
			"id":            emp.ID,
			"employee_code": emp.EmployeeCode,
			"name":          emp.Name,
			"shift":         emp.Shift,
		})
	}

	response.Success(w, map[string]interface{}{
		"shift":     shiftOrNil(sh, err),
		"employees": names,
	})
}

func shiftOrNil(sh shift.ShiftResponse, err error) interface{} {
	if err != nil {
		return nil
	}
	return sh
}

// Initialize implements ShiftHandler.
func (h *ShiftHandlerImpl) Initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Initialize(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Default shifts initialized", nil)
}
