package http

import (
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/stats"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly/attendly-backend-go/internal/pkg/jwt"
)

type StatsHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.StatsService
	jwtService   jwt.Service
}

// GetStats implements StatsHandler. Admins may scope to any employee;
// everyone else only ever sees their own numbers.
func (h *StatsHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwtService.ClaimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	query := r.URL.Query()
	req := stats.StatsRequest{
		EmployeeID: optionalQuery(query.Get("employee_id")),
		StartDate:  optionalQuery(query.Get("start_date")),
		EndDate:    optionalQuery(query.Get("end_date")),
	}

	if !claims.IsAdmin() {
		req.EmployeeID = &claims.EmployeeID
	}

	resp, err := h.statsService.GetStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func NewStatsHandler(statsService stats.StatsService, jwtService jwt.Service) StatsHandler {
	return &StatsHandlerImpl{
		statsService: statsService,
		jwtService:   jwtService,
	}
}
