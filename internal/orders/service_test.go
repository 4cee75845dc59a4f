package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amendezc/audiophile-backend/pkg/db"
	"github.com/amendezc/audiophile-backend/pkg/db/models"
	"github.com/amendezc/audiophile-backend/pkg/enums"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/types"
)

type stubCatalog struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubCatalog) GetProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func newTestService(t *testing.T) (Service, *stubCatalog) {
	t.Helper()

	conn := setupOrdersTestDB(t)
	catalog := &stubCatalog{products: map[uuid.UUID]*models.Product{}}

	svc, err := NewService(NewRepository(conn), db.NewWithConn(conn), catalog, nil)
	require.NoError(t, err)
	return svc, catalog
}

func seedProduct(catalog *stubCatalog, price int) uuid.UUID {
	id := uuid.New()
	catalog.products[id] = &models.Product{
		ID:    id,
		Slug:  "xx99-mark-two-headphones",
		Name:  "XX99 Mark II",
		Price: price,
		Images: types.ImageSet{
			Mobile: "/assets/cart/image-xx99-mark-two-headphones.jpg",
		},
	}
	return id
}

func validInput(items ...LineInput) CreateOrderInput {
	return CreateOrderInput{
		Shipping: ShippingInput{
			Name:    "Alexei Ward",
			Email:   "Alexei@Example.com",
			Phone:   "+12025550136",
			Address: "1137 Williams Avenue",
			ZipCode: "10001",
			City:    "New York",
			Country: "United States",
		},
		Payment: PaymentInput{Method: "cash"},
		Items:   items,
	}
}

func TestCreateOrderRecomputesTotals(t *testing.T) {
	svc, catalog := newTestService(t)
	headphones := seedProduct(catalog, 2999)
	cable := seedProduct(catalog, 99)

	input := validInput(
		LineInput{ProductID: headphones, Quantity: 1},
		LineInput{ProductID: cable, Quantity: 2},
	)
	input.Totals = &AdvisoryTotals{Subtotal: 1, VAT: 1, Shipping: 1, GrandTotal: 1}

	order, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 3197, order.Subtotal)
	assert.Equal(t, 639, order.VAT)
	assert.Equal(t, 50, order.ShippingCost)
	assert.Equal(t, 3886, order.GrandTotal)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, "alexei@example.com", order.Shipping.Email)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 198, order.Items[1].Total)
}

func TestCreateOrderCashStaysPending(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	order, err := svc.CreateOrder(context.Background(), validInput(LineInput{ProductID: id, Quantity: 1}))
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
}

func TestCreateOrderEMoneyConfirms(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	input := validInput(LineInput{ProductID: id, Quantity: 1})
	input.Payment = PaymentInput{Method: "eMoney", EMoneyNumber: "238521993", EMoneyPin: "6891"}

	order, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, order.Status)

	// Only the account number survives the capture; the pin is discarded.
	stored, err := svc.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.EMoneyNumber)
	assert.Equal(t, "238521993", *stored.EMoneyNumber)
}

func TestCreateOrderClampsQuantities(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 10)

	order, err := svc.CreateOrder(context.Background(), validInput(LineInput{ProductID: id, Quantity: 500}))
	require.NoError(t, err)
	assert.Equal(t, 99, order.Items[0].Quantity)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), validInput(LineInput{ProductID: uuid.New(), Quantity: 1}))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateOrderValidatesPaymentFields(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	cases := []PaymentInput{
		{Method: "wire"},
		{Method: "eMoney", EMoneyNumber: "123", EMoneyPin: "6891"},
		{Method: "eMoney", EMoneyNumber: "238521993", EMoneyPin: "68"},
	}
	for _, payment := range cases {
		input := validInput(LineInput{ProductID: id, Quantity: 1})
		input.Payment = payment
		_, err := svc.CreateOrder(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	}
}

func TestCreateOrderValidatesShipping(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	input := validInput(LineInput{ProductID: id, Quantity: 1})
	input.Shipping.Phone = "0123"

	_, err := svc.CreateOrder(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateOrderEnforcesShippingMinimums(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	cases := []struct {
		name   string
		mutate func(*ShippingInput)
	}{
		{"one char name", func(s *ShippingInput) { s.Name = "A" }},
		{"short address", func(s *ShippingInput) { s.Address = "abc" }},
		{"short zip", func(s *ShippingInput) { s.ZipCode = "12" }},
		{"one char city", func(s *ShippingInput) { s.City = "X" }},
		{"one char country", func(s *ShippingInput) { s.Country = "Y" }},
	}
	for _, tc := range cases {
		input := validInput(LineInput{ProductID: id, Quantity: 1})
		tc.mutate(&input.Shipping)

		_, err := svc.CreateOrder(context.Background(), input)
		require.Error(t, err, tc.name)
		assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code(), tc.name)
	}
}

func TestAdvanceOrderWalksLifecycle(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	order, err := svc.CreateOrder(context.Background(), validInput(LineInput{ProductID: id, Quantity: 1}))
	require.NoError(t, err)

	want := []enums.OrderStatus{
		enums.OrderStatusConfirmed,
		enums.OrderStatusShipped,
		enums.OrderStatusDelivered,
	}
	for _, status := range want {
		advanced, err := svc.AdvanceOrder(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, advanced.Status)
	}

	_, err = svc.AdvanceOrder(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestGetOrderByNumber(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	created, err := svc.CreateOrder(context.Background(), validInput(LineInput{ProductID: id, Quantity: 1}))
	require.NoError(t, err)

	got, err := svc.GetOrderByNumber(context.Background(), created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetOrderByNumber(context.Background(), "MISSING1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListOrdersByEmailValidatesAndNormalizes(t *testing.T) {
	svc, catalog := newTestService(t)
	id := seedProduct(catalog, 2999)

	_, err := svc.CreateOrder(context.Background(), validInput(LineInput{ProductID: id, Quantity: 1}))
	require.NoError(t, err)

	list, err := svc.ListOrdersByEmail(context.Background(), ListByEmailInput{Email: "ALEXEI@example.com"})
	require.NoError(t, err)
	assert.Len(t, list.Orders, 1)
	assert.Empty(t, list.Cursor)

	_, err = svc.ListOrdersByEmail(context.Background(), ListByEmailInput{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
