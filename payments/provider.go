// Package payments defines the boundary to the external payment processor.
// The processor itself (intent creation, webhooks, settlement) lives outside
// this application; handlers only ever talk to the Provider interface.
package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Checkout describes a single payment the caller wants to collect.
type Checkout struct {
	Reference   string
	Amount      float64
	Currency    string
	DonorName   string
	DonorEmail  string
	Description string
}

// Session is the processor-side checkout session the payer is redirected to.
type Session struct {
	ID          string
	RedirectURL string
}

// Provider creates checkout sessions with the payment processor.
type Provider interface {
	CreateCheckout(ctx context.Context, c Checkout) (Session, error)
}

// StaticProvider builds checkout URLs from a fixed base URL without calling
// out to any processor. It backs local development and tests.
type StaticProvider struct {
	BaseURL string
}

func (p StaticProvider) CreateCheckout(_ context.Context, c Checkout) (Session, error) {
	if c.Reference == "" {
		return Session{}, errors.New("checkout reference is required")
	}
	if c.Amount <= 0 {
		return Session{}, fmt.Errorf("checkout amount must be positive, got %v", c.Amount)
	}

	base := strings.TrimRight(p.BaseURL, "/")
	return Session{
		ID:          c.Reference,
		RedirectURL: fmt.Sprintf("%s/pay/%s", base, c.Reference),
	}, nil
}
