package cart

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/redis"
)

// kv is the slice of the redis client the store needs; tests swap in a map.
type kv interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Store persists carts per session so they survive reloads. Each mutation is
// a full read/modify/write of the session's JSON payload; the session is the
// only writer so last-write-wins is safe.
type Store struct {
	kv  kv
	ttl time.Duration
}

// NewStore wires the cart store. A zero ttl keeps carts forever.
func NewStore(kv kv, ttl time.Duration) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart kv store required")
	}
	return &Store{kv: kv, ttl: ttl}, nil
}

// Load returns the session's cart, or an empty cart when none is stored yet.
func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return &Cart{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// A corrupt payload is unrecoverable; start the session over.
		return &Cart{}, nil
	}
	return &c, nil
}

// Save writes the cart back, refreshing the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

// Delete drops the stored cart entirely.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart")
	}
	return nil
}

// Mutate loads the cart, applies fn and saves the result, returning the
// updated cart.
func (s *Store) Mutate(ctx context.Context, sessionID string, fn func(*Cart)) (*Cart, error) {
	c, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(c)
	if err := s.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}
