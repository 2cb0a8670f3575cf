package response

import "github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"

type AccountResponse struct {
	ChurchID        string `json:"church_id"`
	StripeAccountID string `json:"stripe_account_id"`
}

func FromOnboardedChurch(c entities.Church) AccountResponse {
	return AccountResponse{ChurchID: c.ID, StripeAccountID: c.StripeAccountID}
}

type AccountLinkResponse struct {
	URL string `json:"url"`
}
