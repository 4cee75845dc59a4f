package controllers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/amendezc/audiophile-backend/internal/notifications"
	"github.com/amendezc/audiophile-backend/internal/orders"
	"github.com/amendezc/audiophile-backend/pkg/db/models"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

// memoryKV satisfies the cart store's kv surface without a Redis instance.
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return "", goredis.Nil
}

func (m *memoryKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.data[key] = value.(string)
	return nil
}

func (m *memoryKV) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *memoryKV) CartKey(sessionID string) string {
	return "audiophile:cart:" + sessionID
}

type testCatalogService struct {
	products map[uuid.UUID]*models.Product
	bySlug   map[string]*models.Product
}

func newTestCatalogService() *testCatalogService {
	return &testCatalogService{
		products: map[uuid.UUID]*models.Product{},
		bySlug:   map[string]*models.Product{},
	}
}

func (s *testCatalogService) add(p *models.Product) {
	s.products[p.ID] = p
	s.bySlug[p.Slug] = p
}

func (s *testCatalogService) ListProducts(_ context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if category == "" || p.Category.String() == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *testCatalogService) GetProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	if p, ok := s.bySlug[slug]; ok {
		return p, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *testCatalogService) GetProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *testCatalogService) GetRelatedProducts(_ context.Context, slug string) ([]models.Product, error) {
	if _, err := s.GetProductBySlug(context.Background(), slug); err != nil {
		return nil, err
	}
	return nil, nil
}

type testOrdersService struct {
	createFn   func(ctx context.Context, input orders.CreateOrderInput) (*models.Order, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	getByNumFn func(ctx context.Context, orderNumber string) (*models.Order, error)
	listFn     func(ctx context.Context, input orders.ListByEmailInput) (*orders.OrderList, error)
	advanceFn  func(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

func (s *testOrdersService) CreateOrder(ctx context.Context, input orders.CreateOrderInput) (*models.Order, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not implemented")
}

func (s *testOrdersService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *testOrdersService) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if s.getByNumFn != nil {
		return s.getByNumFn(ctx, orderNumber)
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *testOrdersService) ListOrdersByEmail(ctx context.Context, input orders.ListByEmailInput) (*orders.OrderList, error) {
	if s.listFn != nil {
		return s.listFn(ctx, input)
	}
	return &orders.OrderList{}, nil
}

func (s *testOrdersService) AdvanceOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.advanceFn != nil {
		return s.advanceFn(ctx, id)
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

type testNotifierService struct {
	sendFn func(ctx context.Context, orderID uuid.UUID) (string, error)
}

func (s *testNotifierService) SendOrderConfirmation(ctx context.Context, orderID uuid.UUID) (string, error) {
	if s.sendFn != nil {
		return s.sendFn(ctx, orderID)
	}
	return "email-123", nil
}

var _ notifications.Service = (*testNotifierService)(nil)
var _ orders.Service = (*testOrdersService)(nil)
