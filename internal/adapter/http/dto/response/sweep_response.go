package response

import "github.com/jsau0309/altarflowdev-sub007/internal/usecase"

// SweepResponse is the 200 body of the cleanup cron entrypoint. Partial
// failures keep Success true with the per-row errors embedded; only a
// whole-run failure is a non-200.
type SweepResponse struct {
	Success  bool     `json:"success"`
	Checked  int      `json:"checked"`
	Updated  int      `json:"updated"`
	Canceled int      `json:"canceled"`
	Errors   []string `json:"errors"`
}

func FromSweepResult(r usecase.SweepResult) SweepResponse {
	return SweepResponse{
		Success:  true,
		Checked:  r.Checked,
		Updated:  r.Updated,
		Canceled: r.Canceled,
		Errors:   r.Errors,
	}
}
