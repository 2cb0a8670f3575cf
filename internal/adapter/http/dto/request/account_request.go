package request

// AccountLinkRequest carries the redirect URLs for a provider onboarding
// link. Both must be https; validation happens in the usecase because the
// provider enforces the same rule.
type AccountLinkRequest struct {
	RefreshURL string `json:"refresh_url" binding:"required"`
	ReturnURL  string `json:"return_url" binding:"required"`
}
