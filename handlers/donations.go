package handlers

import (
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/payments"
)

type donationCheckoutRequest struct {
	DonorName  string  `json:"donor_name"`
	DonorEmail string  `json:"donor_email"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

func (r donationCheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DonorName, validation.Length(0, 200)),
		validation.Field(&r.DonorEmail, is.Email),
		validation.Field(&r.Amount, validation.Required, validation.Min(1.0)),
		validation.Field(&r.Currency, validation.Required, validation.In("EUR")),
	)
}

// HandleDonationCheckout creates a pending donation record and opens a
// checkout session with the payment provider. The donation stays pending
// until the provider confirms it.
func HandleDonationCheckout(app *pocketbase.PocketBase, provider payments.Provider) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req donationCheckoutRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		donationsCol, err := app.FindCollectionByNameOrId("donations")
		if err != nil {
			log.Printf("donation_checkout: could not find donations collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not create donation"})
		}

		reference := uuid.New().String()

		donation := core.NewRecord(donationsCol)
		donation.Set("donor_name", req.DonorName)
		donation.Set("donor_email", req.DonorEmail)
		donation.Set("amount", req.Amount)
		donation.Set("currency", req.Currency)
		donation.Set("status", "pending")
		donation.Set("payment_ref", reference)

		if err := app.Save(donation); err != nil {
			log.Printf("donation_checkout: could not save donation: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not create donation"})
		}

		session, err := provider.CreateCheckout(e.Request.Context(), payments.Checkout{
			Reference:   reference,
			Amount:      req.Amount,
			Currency:    req.Currency,
			DonorName:   req.DonorName,
			DonorEmail:  req.DonorEmail,
			Description: "Donation",
		})
		if err != nil {
			log.Printf("donation_checkout: provider rejected checkout %s: %v", reference, err)
			donation.Set("status", "failed")
			if saveErr := app.Save(donation); saveErr != nil {
				log.Printf("donation_checkout: could not mark donation %s failed: %v", reference, saveErr)
			}
			return e.JSON(http.StatusBadGateway, map[string]any{"error": "payment provider unavailable"})
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"reference":    reference,
			"session_id":   session.ID,
			"redirect_url": session.RedirectURL,
			"status":       "pending",
		})
	}
}

// HandleDonationComplete marks a pending donation completed. It backs the
// provider's return callback.
func HandleDonationComplete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		reference := e.Request.PathValue("reference")

		donation, err := app.FindFirstRecordByData("donations", "payment_ref", reference)
		if err != nil {
			log.Printf("donation_complete: donation %s not found: %v", reference, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "donation not found"})
		}

		if donation.GetString("status") == "completed" {
			return e.JSON(http.StatusOK, map[string]any{"reference": reference, "status": "completed"})
		}

		donation.Set("status", "completed")
		if err := app.Save(donation); err != nil {
			log.Printf("donation_complete: could not update donation %s: %v", reference, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not update donation"})
		}

		return e.JSON(http.StatusOK, map[string]any{"reference": reference, "status": "completed"})
	}
}
