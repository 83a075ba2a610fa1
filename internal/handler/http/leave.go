package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/leave"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	jwtService   jwt.Service
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = claims.EmployeeID

	resp, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status: optionalQuery(r.URL.Query().Get("status")),
	}

	resp, err := h.leaveService.ListAll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	resp, err := h.leaveService.ListMine(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	resp, err := h.leaveService.Approve(r.Context(), leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", resp)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	resp, err := h.leaveService.Reject(r.Context(), leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", resp)
}

func NewLeaveHandler(leaveService leave.LeaveService, jwtService jwt.Service) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		jwtService:   jwtService,
	}
}
