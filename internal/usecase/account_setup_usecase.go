package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

var (
	ErrChurchAlreadyOnboarded = errors.New("church already has a payments account")
	ErrInvalidLinkURL         = errors.New("invalid onboarding link url")
)

// IAccountSetupUseCase creates the provider sub-account and onboarding
// link for a church. Both operations are mutating against the provider
// and are wrapped by the idempotency guard at the handler.

type IAccountSetupUseCase interface {
	CreateProviderAccount(ctx context.Context, church entities.Church) (entities.Church, error)
	CreateOnboardingLink(ctx context.Context, church entities.Church, refreshURL, returnURL string) (string, error)
}

type AccountSetupUseCase struct {
	churchRepo interfaces.IChurchRepository
	gateway    interfaces.IPaymentsGateway
}

var _ IAccountSetupUseCase = (*AccountSetupUseCase)(nil)

func NewAccountSetupUseCase(churchRepo interfaces.IChurchRepository, gateway interfaces.IPaymentsGateway) *AccountSetupUseCase {
	return &AccountSetupUseCase{churchRepo: churchRepo, gateway: gateway}
}

func (u *AccountSetupUseCase) CreateProviderAccount(ctx context.Context, church entities.Church) (entities.Church, error) {
	log.Printf("[account][usecase] create start church_id=%s", church.ID)
	if church.StripeAccountID != "" {
		return entities.Church{}, ErrChurchAlreadyOnboarded
	}
	if u.gateway == nil {
		return entities.Church{}, ErrGatewayNotConfigured
	}

	acct, err := u.gateway.CreateAccount(ctx, church.Name, church.Email)
	if err != nil {
		log.Printf("[account][usecase] gateway create failed church_id=%s err=%v", church.ID, err)
		return entities.Church{}, err
	}

	if err := u.churchRepo.SetStripeAccountID(ctx, church.ID, acct.ID); err != nil {
		log.Printf("[account][usecase] persist failed church_id=%s account=%s err=%v", church.ID, acct.ID, err)
		return entities.Church{}, err
	}
	church.StripeAccountID = acct.ID
	log.Printf("[account][usecase] create success church_id=%s account=%s", church.ID, acct.ID)
	return church, nil
}

func (u *AccountSetupUseCase) CreateOnboardingLink(ctx context.Context, church entities.Church, refreshURL, returnURL string) (string, error) {
	if church.StripeAccountID == "" {
		return "", ErrChurchNotOnboarded
	}
	if !isHTTPSURL(refreshURL) || !isHTTPSURL(returnURL) {
		return "", ErrInvalidLinkURL
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}
	return u.gateway.CreateAccountLink(ctx, church.StripeAccountID, refreshURL, returnURL)
}

func isHTTPSURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "https://") && len(s) > len("https://")
}
