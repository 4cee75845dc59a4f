package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/pkg/db/models"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/logger"
	"github.com/amendezc/audiophile-backend/pkg/mailer"
)

// Service dispatches customer-facing transactional email.
type Service interface {
	SendOrderConfirmation(ctx context.Context, orderID uuid.UUID) (string, error)
}

type orderLoader interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type service struct {
	orders orderLoader
	sender mailer.Sender
	logg   *logger.Logger
}

// NewService constructs the notifications service.
func NewService(orders orderLoader, sender mailer.Sender, logg *logger.Logger) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order loader required")
	}
	if sender == nil {
		return nil, fmt.Errorf("mail sender required")
	}
	return &service{orders: orders, sender: sender, logg: logg}, nil
}

// SendOrderConfirmation renders and sends the confirmation email for the
// order, returning the provider message id.
func (s *service) SendOrderConfirmation(ctx context.Context, orderID uuid.UUID) (string, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	html, err := renderConfirmation(order)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render confirmation email")
	}

	messageID, err := s.sender.Send(ctx, mailer.Message{
		To:      order.Shipping.Email,
		Subject: confirmationSubject(order),
		HTML:    html,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send confirmation email")
	}

	if s.logg != nil {
		ctx = s.logg.WithOrderNumber(ctx, order.OrderNumber)
		s.logg.Info(ctx, "order confirmation email sent")
	}
	return messageID, nil
}
