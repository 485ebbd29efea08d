package payment

import (
	"context"
	"log/slog"

	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
)

// Simulator is an in-process stand-in for a payment provider. Charges always
// settle. Zero-amount charges settle without a provider round trip in real
// deployments too, so the simulator treats them the same.
type Simulator struct {
	logger *slog.Logger
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger}
}

func (s *Simulator) Charge(ctx context.Context, userID, offeringID uuid.UUID, amountCents int64) (*commands.PaymentOutcome, error) {
	outcome := &commands.PaymentOutcome{
		PaymentID:   "sim_" + uuid.NewString(),
		UserID:      userID,
		OfferingID:  offeringID,
		AmountCents: amountCents,
		Success:     true,
	}
	s.logger.Info("simulated charge",
		"payment_id", outcome.PaymentID,
		"user_id", userID,
		"offering_id", offeringID,
		"amount_cents", amountCents,
	)
	return outcome, nil
}

func (s *Simulator) Refund(ctx context.Context, paymentID string) error {
	s.logger.Info("simulated refund", "payment_id", paymentID)
	return nil
}
