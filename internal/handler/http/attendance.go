package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly/attendly-backend-go/internal/pkg/jwt"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	jwtService        jwt.Service
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req attendance.PunchInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = claims.EmployeeID

	resp, err := h.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", resp)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req attendance.PunchOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = claims.EmployeeID

	resp, err := h.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", resp)
}

// GetToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	resp, err := h.attendanceService.GetToday(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// No punch yet today is not an error, just an empty payload.
	response.Success(w, resp)
}

// GetHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	filter := attendance.HistoryFilter{
		Period: r.URL.Query().Get("period"),
		Page:   page,
	}

	resp, err := h.attendanceService.GetHistory(r.Context(), claims.EmployeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((resp.TotalCount + int64(resp.Limit) - 1) / int64(resp.Limit))
	response.SuccessWithMeta(w, resp.Records, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: totalPages,
	})
}

// ListRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := attendance.ReportFilter{
		EmployeeID:   optionalQuery(query.Get("employee_id")),
		DepartmentID: optionalQuery(query.Get("department_id")),
		StartDate:    optionalQuery(query.Get("start_date")),
		EndDate:      optionalQuery(query.Get("end_date")),
	}

	resp, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func optionalQuery(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, jwtService jwt.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		jwtService:        jwtService,
	}
}
