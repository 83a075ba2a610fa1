package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PolicyHandlerImpl struct {
	policyService policy.PolicyService
}

// Get implements PolicyHandler.
func (h *PolicyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.policyService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements PolicyHandler.
func (h *PolicyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req policy.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update policy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.policyService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy settings updated", resp)
}

func NewPolicyHandler(policyService policy.PolicyService) PolicyHandler {
	return &PolicyHandlerImpl{
		policyService: policyService,
	}
}
