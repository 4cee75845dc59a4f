package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/api/responses"
	"github.com/amendezc/audiophile-backend/api/validators"
	"github.com/amendezc/audiophile-backend/internal/notifications"
	"github.com/amendezc/audiophile-backend/internal/orders"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/logger"
	"github.com/amendezc/audiophile-backend/pkg/pagination"
)

type shippingRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required,min=5"`
	ZipCode string `json:"zipCode" validate:"required,min=3"`
	City    string `json:"city" validate:"required,min=2"`
	Country string `json:"country" validate:"required,min=2"`
}

type paymentRequest struct {
	Method       string `json:"method" validate:"required,oneof=eMoney cash"`
	EMoneyNumber string `json:"eMoneyNumber" validate:"omitempty,len=9,numeric"`
	EMoneyPin    string `json:"eMoneyPin" validate:"omitempty,len=4,numeric"`
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
}

type totalsRequest struct {
	Subtotal   int `json:"subtotal"`
	VAT        int `json:"vat"`
	Shipping   int `json:"shipping"`
	GrandTotal int `json:"grandTotal"`
}

type createOrderRequest struct {
	Shipping shippingRequest    `json:"shipping" validate:"required"`
	Payment  paymentRequest     `json:"payment" validate:"required"`
	Items    []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Totals   *totalsRequest     `json:"totals" validate:"omitempty"`
}

type createOrderResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	GrandTotal  int    `json:"grandTotal"`
}

func CreateOrder(svc orders.Service, notifier notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := toCreateOrderInput(body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.CreateOrder(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// Confirmation email is best effort; a provider outage must not fail
		// an order that is already persisted.
		if notifier != nil {
			if _, err := notifier.SendOrderConfirmation(r.Context(), order.ID); err != nil && logg != nil {
				ctx := logg.WithOrderNumber(r.Context(), order.OrderNumber)
				logg.Error(ctx, "order confirmation email failed", err)
			}
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, createOrderResponse{
			OrderID:     order.ID.String(),
			OrderNumber: order.OrderNumber,
			Status:      order.Status.String(),
			GrandTotal:  order.GrandTotal,
		})
	}
}

func toCreateOrderInput(body createOrderRequest) (orders.CreateOrderInput, error) {
	input := orders.CreateOrderInput{
		Shipping: orders.ShippingInput{
			Name:    body.Shipping.Name,
			Email:   body.Shipping.Email,
			Phone:   body.Shipping.Phone,
			Address: body.Shipping.Address,
			ZipCode: body.Shipping.ZipCode,
			City:    body.Shipping.City,
			Country: body.Shipping.Country,
		},
		Payment: orders.PaymentInput{
			Method:       body.Payment.Method,
			EMoneyNumber: body.Payment.EMoneyNumber,
			EMoneyPin:    body.Payment.EMoneyPin,
		},
	}
	for _, item := range body.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return orders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
		}
		input.Items = append(input.Items, orders.LineInput{ProductID: productID, Quantity: item.Quantity})
	}
	if body.Totals != nil {
		input.Totals = &orders.AdvisoryTotals{
			Subtotal:   body.Totals.Subtotal,
			VAT:        body.Totals.VAT,
			Shipping:   body.Totals.Shipping,
			GrandTotal: body.Totals.GrandTotal,
		}
	}
	return input, nil
}

func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrderByID(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func GetOrderByNumber(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.GetOrderByNumber(r.Context(), chi.URLParam(r, "orderNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type orderListResponse struct {
	Orders any    `json:"orders"`
	Cursor string `json:"cursor,omitempty"`
}

func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListOrdersByEmail(r.Context(), orders.ListByEmailInput{
			Email: r.URL.Query().Get("email"),
			Pagination: pagination.Params{
				Limit:  limit,
				Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orderListResponse{Orders: list.Orders, Cursor: list.Cursor})
	}
}

func AdvanceOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.AdvanceOrder(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func parseOrderID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id")
	}
	return id, nil
}
