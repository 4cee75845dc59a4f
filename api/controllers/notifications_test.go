package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
)

func TestSendOrderConfirmationEndpoint(t *testing.T) {
	orderID := uuid.New()
	svc := &testNotifierService{
		sendFn: func(_ context.Context, got uuid.UUID) (string, error) {
			assert.Equal(t, orderID, got)
			return "email-123", nil
		},
	}

	body := `{"orderId":"` + orderID.String() + `"}`
	resp := httptest.NewRecorder()
	SendOrderConfirmation(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/order-confirmation", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, resp.Code)
	var envelope struct {
		Data orderConfirmationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "email-123", envelope.Data.NotificationID)
}

func TestSendOrderConfirmationAcceptsRecipientFields(t *testing.T) {
	orderID := uuid.New()
	svc := &testNotifierService{
		sendFn: func(_ context.Context, got uuid.UUID) (string, error) {
			assert.Equal(t, orderID, got)
			return "email-456", nil
		},
	}

	// The recipient fields ride along with the order id; the service still
	// resolves both from the persisted order.
	body := `{"orderId":"` + orderID.String() + `","email":"alexei@example.com","name":"Alexei Ward"}`
	resp := httptest.NewRecorder()
	SendOrderConfirmation(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/order-confirmation", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSendOrderConfirmationUnknownOrder(t *testing.T) {
	svc := &testNotifierService{
		sendFn: func(_ context.Context, _ uuid.UUID) (string, error) {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		},
	}

	body := `{"orderId":"` + uuid.NewString() + `"}`
	resp := httptest.NewRecorder()
	SendOrderConfirmation(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/order-confirmation", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSendOrderConfirmationMissingBody(t *testing.T) {
	resp := httptest.NewRecorder()
	SendOrderConfirmation(&testNotifierService{}, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/order-confirmation", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
