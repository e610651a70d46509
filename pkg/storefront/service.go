package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"gitlab.connectwisedev.com/coffee-service/models"
	"gitlab.connectwisedev.com/coffee-service/pkg/state"
	"gitlab.connectwisedev.com/coffee-service/pkg/store"
)

// CatalogLoader fetches the remote catalog.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]models.Product, error)
}

// Service drives a Store on behalf of the outer layers. Every successful
// mutation is followed by a save of the persisted subset under key.
type Service struct {
	mu     sync.Mutex
	store  *store.Store
	loader CatalogLoader
	repo   state.Repository
	key    string
	logger zerolog.Logger
}

func NewService(st *store.Store, loader CatalogLoader, repo state.Repository, key string, logger zerolog.Logger) *Service {
	if st == nil {
		panic("store cannot be nil")
	}
	if loader == nil {
		panic("loader cannot be nil")
	}
	if repo == nil {
		panic("repository cannot be nil")
	}
	return &Service{
		store:  st,
		loader: loader,
		repo:   repo,
		key:    key,
		logger: logger.With().Str("component", "storefront").Str("state_key", key).Logger(),
	}
}

// Restore loads the saved state once at startup. A missing or corrupt
// record leaves an empty state; only backend failures are returned.
func (s *Service) Restore(ctx context.Context) error {
	saved, err := s.repo.Load(ctx, s.key)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case errors.Is(err, state.ErrNoState):
		s.logger.Info().Msg("no saved state, starting empty")
		s.store.Reset()
		return nil
	case errors.Is(err, state.ErrCorruptState):
		s.logger.Warn().Err(err).Msg("saved state unreadable, starting empty")
		s.store.Reset()
		return nil
	case err != nil:
		return err
	}
	s.store.Restore(*saved)
	s.logger.Info().
		Int("cart_lines", len(saved.Cart)).
		Int("orders", len(saved.Orders)).
		Msg("state restored")
	return nil
}

// LoadProducts refreshes the catalog. The network call runs without holding
// the lock, so overlapping loads and other operations interleave and the
// load that finishes last wins. On failure the store already holds the
// fallback catalog when the error is returned.
//
// A started load is not cancelled with ctx; it is bounded only by the
// loader's own timeout.
func (s *Service) LoadProducts(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	s.store.BeginLoad()
	s.mu.Unlock()

	products, err := s.loader.LoadCatalog(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.store.ApplyCatalogError(err)
		return err
	}
	s.store.ApplyCatalog(products)
	return nil
}

// EnterCatalog is the refresh run when the menu view is opened. Failures
// are logged and never block the caller.
func (s *Service) EnterCatalog(ctx context.Context) {
	if err := s.LoadProducts(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog refresh failed, serving fallback menu")
	}
}

func (s *Service) AddToCart(ctx context.Context, p models.Product, quantity int, v models.Variant) error {
	return s.mutate(ctx, func(st *store.Store) error {
		return st.AddToCart(p, quantity, v)
	})
}

// AddProductToCart adds the catalog product with the given id.
func (s *Service) AddProductToCart(ctx context.Context, productID string, quantity int, v models.Variant) error {
	return s.mutate(ctx, func(st *store.Store) error {
		p, err := st.Product(productID)
		if err != nil {
			return err
		}
		return st.AddToCart(p, quantity, v)
	})
}

func (s *Service) RemoveFromCart(ctx context.Context, productID string, v models.Variant) error {
	return s.mutate(ctx, func(st *store.Store) error {
		return st.RemoveFromCart(productID, v)
	})
}

func (s *Service) UpdateCartItemQuantity(ctx context.Context, productID string, quantity int, v models.Variant) error {
	return s.mutate(ctx, func(st *store.Store) error {
		return st.UpdateCartItemQuantity(productID, quantity, v)
	})
}

func (s *Service) ClearCart(ctx context.Context) {
	_ = s.mutate(ctx, func(st *store.Store) error {
		st.ClearCart()
		return nil
	})
}

func (s *Service) AddFavorite(ctx context.Context, productID string) {
	_ = s.mutate(ctx, func(st *store.Store) error {
		st.AddFavorite(productID)
		return nil
	})
}

func (s *Service) RemoveFavorite(ctx context.Context, productID string) {
	_ = s.mutate(ctx, func(st *store.Store) error {
		st.RemoveFavorite(productID)
		return nil
	})
}

func (s *Service) ToggleFavorite(ctx context.Context, productID string) bool {
	var on bool
	_ = s.mutate(ctx, func(st *store.Store) error {
		on = st.ToggleFavorite(productID)
		return nil
	})
	return on
}

func (s *Service) CreateOrder(ctx context.Context, deliveryType models.DeliveryType, address string) (models.Order, error) {
	var order models.Order
	err := s.mutate(ctx, func(st *store.Store) error {
		var err error
		order, err = st.CreateOrder(deliveryType, address)
		return err
	})
	if err == nil {
		s.logger.Info().
			Str("order_id", order.ID).
			Str("delivery_type", string(order.DeliveryType)).
			Float64("total", order.Total).
			Msg("order created")
	}
	return order, err
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	return s.mutate(ctx, func(st *store.Store) error {
		return st.UpdateOrderStatus(orderID, status)
	})
}

func (s *Service) SetUser(ctx context.Context, u models.User) {
	_ = s.mutate(ctx, func(st *store.Store) error {
		st.SetUser(u)
		return nil
	})
}

func (s *Service) Logout(ctx context.Context) {
	_ = s.mutate(ctx, func(st *store.Store) error {
		st.Logout()
		return nil
	})
}

// View runs fn with read access to the store.
func (s *Service) View(fn func(st *store.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

// mutate applies fn and saves the persisted subset when fn succeeds. Save
// failures are logged; the in-memory mutation stands.
func (s *Service) mutate(ctx context.Context, fn func(st *store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.store); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, s.key, s.store.Snapshot()); err != nil {
		s.logger.Error().Err(err).Msg("failed to save state")
	}
	return nil
}
