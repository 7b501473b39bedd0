package payments

import (
	"context"
	"testing"
)

func TestStaticProvider_CreateCheckout(t *testing.T) {
	p := StaticProvider{BaseURL: "https://pay.example.com/"}

	session, err := p.CreateCheckout(context.Background(), Checkout{
		Reference: "don-123",
		Amount:    25,
		Currency:  "EUR",
	})
	if err != nil {
		t.Fatalf("CreateCheckout() error = %v", err)
	}
	if session.ID != "don-123" {
		t.Errorf("session ID = %q, want don-123", session.ID)
	}
	if session.RedirectURL != "https://pay.example.com/pay/don-123" {
		t.Errorf("RedirectURL = %q", session.RedirectURL)
	}
}

func TestStaticProvider_RejectsInvalidCheckouts(t *testing.T) {
	p := StaticProvider{BaseURL: "https://pay.example.com"}

	tests := []struct {
		name     string
		checkout Checkout
	}{
		{"missing reference", Checkout{Amount: 10}},
		{"zero amount", Checkout{Reference: "x", Amount: 0}},
		{"negative amount", Checkout{Reference: "x", Amount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.CreateCheckout(context.Background(), tt.checkout); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
