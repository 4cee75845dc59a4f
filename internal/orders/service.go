package orders

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amendezc/audiophile-backend/internal/pricing"
	"github.com/amendezc/audiophile-backend/pkg/db"
	"github.com/amendezc/audiophile-backend/pkg/db/models"
	"github.com/amendezc/audiophile-backend/pkg/enums"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/logger"
	"github.com/amendezc/audiophile-backend/pkg/pagination"
	"github.com/amendezc/audiophile-backend/pkg/types"
)

// orderNumberAttempts bounds retries when the generated order number loses a
// uniqueness race.
const orderNumberAttempts = 3

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emoneyPattern = regexp.MustCompile(`^\d{9}$`)
	pinPattern    = regexp.MustCompile(`^\d{4}$`)
)

// Service exposes checkout and order lifecycle operations.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListOrdersByEmail(ctx context.Context, input ListByEmailInput) (*OrderList, error)
	AdvanceOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type catalogReader interface {
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     Repository
	dbClient *db.Client
	catalog  catalogReader
	logg     *logger.Logger
	now      func() time.Time
}

// NewService constructs an orders service instance.
func NewService(repo Repository, dbClient *db.Client, catalog catalogReader, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		catalog:  catalog,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// CreateOrder validates the checkout payload, snapshots the referenced
// products, recomputes all totals server side and persists the order. The
// order is created pending; an eMoney payment captures immediately and moves
// it to confirmed, cash on delivery stays pending until fulfilment advances
// it.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	shipping, err := validateShipping(input.Shipping)
	if err != nil {
		return nil, err
	}
	method, emoneyNumber, err := validatePayment(input.Payment)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}

	items, lines, err := s.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	subtotal := pricing.Subtotal(lines)
	vat := pricing.VAT(subtotal)
	grandTotal := pricing.GrandTotal(subtotal, pricing.FlatShippingCost, vat)

	if input.Totals != nil && input.Totals.GrandTotal != grandTotal && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf(
			"client total mismatch: advisory=%d computed=%d", input.Totals.GrandTotal, grandTotal,
		))
	}

	order := &models.Order{
		ID:            uuid.New(),
		Shipping:      *shipping,
		PaymentMethod: method,
		EMoneyNumber:  emoneyNumber,
		Subtotal:      subtotal,
		ShippingCost:  pricing.FlatShippingCost,
		VAT:           vat,
		GrandTotal:    grandTotal,
		Status:        enums.OrderStatusPending,
		Items:         items,
	}

	created, err := s.persistWithFreshNumber(ctx, order)
	if err != nil {
		return nil, err
	}

	if method == enums.PaymentMethodEMoney {
		// Simulated capture: eMoney settles at checkout.
		if _, err := s.repo.UpdateStatus(ctx, created.ID, enums.OrderStatusPending, enums.OrderStatusConfirmed); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "confirm order")
		}
		created.Status = enums.OrderStatusConfirmed
	}

	if s.logg != nil {
		ctx = s.logg.WithOrderNumber(ctx, created.OrderNumber)
		s.logg.Info(ctx, "order created")
	}
	return created, nil
}

func (s *service) persistWithFreshNumber(ctx context.Context, order *models.Order) (*models.Order, error) {
	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := newOrderNumber(s.now())
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate order number")
		}
		order.OrderNumber = number

		err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
			_, err := s.repo.WithTx(tx).Create(ctx, order)
			return err
		})
		if err == nil {
			return order, nil
		}
		if !db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
		}
		lastErr = err
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, lastErr, "order number collision")
}

func (s *service) snapshotItems(ctx context.Context, lines []LineInput) ([]models.OrderItem, []pricing.Line, error) {
	items := make([]models.OrderItem, 0, len(lines))
	priced := make([]pricing.Line, 0, len(lines))

	for _, line := range lines {
		product, err := s.catalog.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product in order").
					WithDetails(map[string]string{"productId": line.ProductID.String()})
			}
			return nil, nil, err
		}

		quantity := clampQuantity(line.Quantity)
		items = append(items, models.OrderItem{
			ID:        uuid.New(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Image:     product.Images.Mobile,
			Total:     product.Price * quantity,
		})
		priced = append(priced, pricing.Line{Price: product.Price, Quantity: quantity})
	}
	return items, priced, nil
}

// GetOrderByID loads a full order with its line items.
func (s *service) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return order, nil
}

// GetOrderByNumber loads a full order by its public order number.
func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return order, nil
}

// ListOrdersByEmail returns the order history for a shipping email, newest
// first with cursor pagination.
func (s *service) ListOrdersByEmail(ctx context.Context, input ListByEmailInput) (*OrderList, error) {
	email := normalizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valid email required")
	}

	orders, cursor, err := s.repo.ListByEmail(ctx, email, input.Pagination)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	result := &OrderList{Orders: orders}
	if cursor != nil {
		result.Cursor = pagination.EncodeCursor(*cursor)
	}
	return result, nil
}

// AdvanceOrder moves the order to its single allowed successor status.
// Delivered orders are terminal and return a state conflict.
func (s *service) AdvanceOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is in a terminal status").
			WithDetails(map[string]string{"status": order.Status.String()})
	}

	updated, err := s.repo.UpdateStatus(ctx, id, order.Status, next)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "advance order")
	}
	if updated == 0 {
		// Lost a concurrent transition; the stored status moved underneath us.
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order status changed concurrently")
	}

	order.Status = next
	if s.logg != nil {
		ctx = s.logg.WithOrderNumber(ctx, order.OrderNumber)
		s.logg.Info(ctx, fmt.Sprintf("order advanced to %s", next))
	}
	return order, nil
}

func clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > 99 {
		return 99
	}
	return quantity
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Minimum lengths for the free-text shipping fields, matching the checkout
// form's rules.
const (
	minNameLen    = 2
	minAddressLen = 5
	minZipLen     = 3
	minCityLen    = 2
	minCountryLen = 2
)

func validateShipping(input ShippingInput) (*types.ShippingDetails, error) {
	problems := map[string]string{}
	atLeast := func(field, value string, min int) string {
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			problems[field] = "is required"
		case len([]rune(value)) < min:
			problems[field] = fmt.Sprintf("must be at least %d characters", min)
		}
		return value
	}

	details := &types.ShippingDetails{
		Name:    atLeast("name", input.Name, minNameLen),
		Email:   normalizeEmail(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Address: atLeast("address", input.Address, minAddressLen),
		ZipCode: atLeast("zipCode", input.ZipCode, minZipLen),
		City:    atLeast("city", input.City, minCityLen),
		Country: atLeast("country", input.Country, minCountryLen),
	}
	if !emailPattern.MatchString(details.Email) {
		problems["email"] = "must be a valid email"
	}
	if !phonePattern.MatchString(details.Phone) {
		problems["phone"] = "must be a valid phone number"
	}
	if len(problems) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipping details").
			WithDetails(problems)
	}
	return details, nil
}

// validatePayment shape-checks the e-money credentials for the simulated
// capture. The pin is verified and then discarded; it is never persisted.
func validatePayment(input PaymentInput) (enums.PaymentMethod, *string, error) {
	method, err := enums.ParsePaymentMethod(input.Method)
	if err != nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	if method != enums.PaymentMethodEMoney {
		return method, nil, nil
	}

	number := strings.TrimSpace(input.EMoneyNumber)
	pin := strings.TrimSpace(input.EMoneyPin)
	if !emoneyPattern.MatchString(number) {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "e-money number must be 9 digits")
	}
	if !pinPattern.MatchString(pin) {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "e-money pin must be 4 digits")
	}
	return method, &number, nil
}
