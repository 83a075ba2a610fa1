package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/verification"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly/attendly-backend-go/internal/pkg/jwt"
)

type VerificationHandler interface {
	RecordAttempt(w http.ResponseWriter, r *http.Request)
}

type VerificationHandlerImpl struct {
	verificationService verification.VerificationService
	jwtService          jwt.Service
}

// RecordAttempt implements VerificationHandler.
func (h *VerificationHandlerImpl) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req verification.AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAttempt decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = claims.EmployeeID

	resp, err := h.verificationService.RecordAttempt(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func NewVerificationHandler(verificationService verification.VerificationService, jwtService jwt.Service) VerificationHandler {
	return &VerificationHandlerImpl{
		verificationService: verificationService,
		jwtService:          jwtService,
	}
}
