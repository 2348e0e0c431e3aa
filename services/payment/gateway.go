package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medinatours/database"
	"medinatours/models"
	"medinatours/services/mailer"
	"medinatours/utils"
)

// Gateway is the external payment provider capability.
type Gateway interface {
	InitPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInit, error)
	PaymentStatus(ctx context.Context, ref string) (string, error)
}

// Collection is the payments collection path, keyed by payment reference.
const Collection = "payments"

// Service fronts the gateway and keeps a durable trace of every initiated
// payment so the webhook can notify the payer.
type Service struct {
	Gateway Gateway
	Store   database.KeyedStore
	Mail    mailer.Sender
}

// NewService constructs a payment Service.
func NewService(gateway Gateway, store database.KeyedStore, mail mailer.Sender) *Service {
	return &Service{Gateway: gateway, Store: store, Mail: mail}
}

// CreatePayment initiates a payment and records it as pending. A failed
// record write is logged but does not undo the upstream payment.
func (s *Service) CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInit, error) {
	if req.OrderID == "" {
		req.OrderID = uuid.New().String()
	}

	init, err := s.Gateway.InitPayment(ctx, req)
	if err != nil {
		return nil, err
	}

	record := models.PaymentRecord{
		OrderID:   req.OrderID,
		Email:     req.Email,
		Amount:    req.Amount,
		Status:    "pending",
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.Store.Set(ctx, Collection+"/"+init.PaymentRef, record); err != nil {
		utils.GetLogger().Warn("failed to record payment",
			zap.String("paymentRef", init.PaymentRef), zap.Error(err))
	}
	return init, nil
}

// HandleWebhook fetches the gateway's view of the payment, updates the stored
// record and mails the payer the outcome. Record and mail failures are logged
// but the webhook still succeeds; the gateway status is the source of truth.
func (s *Service) HandleWebhook(ctx context.Context, ref string) (string, error) {
	status, err := s.Gateway.PaymentStatus(ctx, ref)
	if err != nil {
		return "", err
	}
	logger := utils.GetLogger()

	if err := s.Store.Update(ctx, Collection+"/"+ref, map[string]interface{}{"status": status}); err != nil {
		logger.Warn("failed to update payment record",
			zap.String("paymentRef", ref), zap.Error(err))
	}

	var record *models.PaymentRecord
	if err := s.Store.Get(ctx, Collection+"/"+ref, &record); err != nil {
		logger.Warn("failed to read payment record",
			zap.String("paymentRef", ref), zap.Error(err))
	} else if record != nil && record.Email != "" {
		body := "Your payment was " + status + "."
		if err := s.Mail.Send(ctx, []string{record.Email}, "Payment Status", body); err != nil {
			logger.Warn("failed to queue payment status mail",
				zap.String("paymentRef", ref), zap.Error(err))
		}
	}

	return status, nil
}
