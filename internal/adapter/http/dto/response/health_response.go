package response

import (
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
)

type AuthHealthResponse struct {
	Status      string    `json:"status"`
	Detail      string    `json:"detail,omitempty"`
	Cached      bool      `json:"cached"`
	RateLimited bool      `json:"rateLimited"`
	CheckedAt   time.Time `json:"checked_at"`
}

func FromAuthHealthResult(r usecase.AuthHealthResult) AuthHealthResponse {
	return AuthHealthResponse{
		Status:      r.Status,
		Detail:      r.Detail,
		Cached:      r.Cached,
		RateLimited: r.RateLimited,
		CheckedAt:   r.CheckedAt,
	}
}
