package entities

import "time"

// Church is the owning organization (tenant) for donations and payouts.
//
// StripeAccountID is the provider's connected sub-account; it is empty
// until the church completes payments onboarding. APIKey authenticates
// server-to-server callers of the reconciliation API.
type Church struct {
	ID              string    `gorm:"size:36;primaryKey" json:"id"`
	Name            string    `gorm:"size:120" json:"name"`
	Email           string    `gorm:"size:120" json:"email"`
	StripeAccountID string    `gorm:"size:64;index" json:"stripe_account_id,omitempty"`
	APIKey          string    `gorm:"size:64;uniqueIndex" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName implements the GORM tabler interface.
func (Church) TableName() string { return "churches" }
