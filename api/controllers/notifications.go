package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/api/responses"
	"github.com/amendezc/audiophile-backend/api/validators"
	"github.com/amendezc/audiophile-backend/internal/notifications"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/logger"
)

// The recipient fields are accepted for interface compatibility only; the
// persisted order supplies the email address and name actually used.
type orderConfirmationRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Email   string `json:"email" validate:"omitempty,email"`
	Name    string `json:"name" validate:"omitempty"`
}

type orderConfirmationResponse struct {
	NotificationID string `json:"notificationId"`
}

func SendOrderConfirmation(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "email delivery is not configured"))
			return
		}

		var body orderConfirmationRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		orderID, err := uuid.Parse(body.OrderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		notificationID, err := svc.SendOrderConfirmation(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orderConfirmationResponse{NotificationID: notificationID})
	}
}
