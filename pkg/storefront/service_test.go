package storefront

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"gitlab.connectwisedev.com/coffee-service/models"
	"gitlab.connectwisedev.com/coffee-service/pkg/catalog"
	"gitlab.connectwisedev.com/coffee-service/pkg/state"
	"gitlab.connectwisedev.com/coffee-service/pkg/store"
)

const testKey = "coffee_app_store"

type stubLoader struct {
	products []models.Product
	err      error
	gate     chan struct{}
	calls    int
}

func (l *stubLoader) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	l.calls++
	if l.gate != nil {
		<-l.gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.products, l.err
}

type failingRepo struct {
	loadErr error
	saves   int
}

func (r *failingRepo) Load(context.Context, string) (*models.PersistedState, error) {
	return nil, r.loadErr
}

func (r *failingRepo) Save(context.Context, string, models.PersistedState) error {
	r.saves++
	return errors.New("disk full")
}

type ServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	loader *stubLoader
	repo   *state.MemoryRepository
	svc    *Service
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.loader = &stubLoader{products: []models.Product{{ID: "1", Name: "美式咖啡", Price: 25}, {ID: "2", Name: "拿铁咖啡", Price: 32}}}
	s.repo = state.NewMemoryRepository()
	s.svc = NewService(store.New(), s.loader, s.repo, testKey, zerolog.Nop())
}

func (s *ServiceTestSuite) saved() *models.PersistedState {
	st, err := s.repo.Load(s.ctx, testKey)
	require.NoError(s.T(), err)
	return st
}

func (s *ServiceTestSuite) TestLoadProductsReplacesCatalog() {
	require.NoError(s.T(), s.svc.LoadProducts(s.ctx))

	s.svc.View(func(st *store.Store) {
		assert.Equal(s.T(), s.loader.products, st.Products())
		assert.False(s.T(), st.Loading())
		assert.Empty(s.T(), st.ProductsError())
	})
	_, err := s.repo.Load(s.ctx, testKey)
	assert.ErrorIs(s.T(), err, state.ErrNoState, "catalog loads are never persisted")
}

func (s *ServiceTestSuite) TestLoadProductsFallback() {
	s.loader.err = &catalog.APIError{Message: "bad"}

	err := s.svc.LoadProducts(s.ctx)
	require.Error(s.T(), err)
	s.svc.View(func(st *store.Store) {
		assert.Equal(s.T(), store.FallbackCatalog(), st.Products())
		assert.Equal(s.T(), "bad", st.ProductsError())
		assert.False(s.T(), st.Loading())
	})
}

func (s *ServiceTestSuite) TestResponseWithoutDataInstallsFallback() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	loader := catalog.NewLoader(server.URL, server.Client(), zerolog.Nop())
	svc := NewService(store.New(), loader, s.repo, testKey, zerolog.Nop())

	err := svc.LoadProducts(s.ctx)
	var unknown *catalog.UnknownError
	require.ErrorAs(s.T(), err, &unknown)
	svc.View(func(st *store.Store) {
		assert.Equal(s.T(), store.FallbackCatalog(), st.Products())
		assert.NotEmpty(s.T(), st.ProductsError())
	})
}

func (s *ServiceTestSuite) TestLoadOutlivesCallerCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	require.NoError(s.T(), s.svc.LoadProducts(ctx))
	s.svc.View(func(st *store.Store) {
		assert.Equal(s.T(), s.loader.products, st.Products())
		assert.Empty(s.T(), st.ProductsError())
	})
}

func (s *ServiceTestSuite) TestEnterCatalogSwallowsFailure() {
	s.loader.err = &catalog.TransportError{StatusCode: 503}

	assert.NotPanics(s.T(), func() { s.svc.EnterCatalog(s.ctx) })
	assert.Equal(s.T(), 1, s.loader.calls)
	s.svc.View(func(st *store.Store) {
		assert.Len(s.T(), st.Products(), 1)
	})
}

func (s *ServiceTestSuite) TestLoadDoesNotBlockMutations() {
	s.loader.gate = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- s.svc.LoadProducts(s.ctx) }()

	require.Eventually(s.T(), func() bool {
		loading := false
		s.svc.View(func(st *store.Store) { loading = st.Loading() })
		return loading
	}, time.Second, 5*time.Millisecond)

	require.NoError(s.T(), s.svc.AddProductToCart(s.ctx, "3", 1, models.Variant{}), "default menu still in place")
	close(s.loader.gate)
	require.NoError(s.T(), <-done)

	s.svc.View(func(st *store.Store) {
		assert.Len(s.T(), st.Products(), 2)
		assert.Equal(s.T(), 1, st.CartItemCount())
	})
}

func (s *ServiceTestSuite) TestMutationsAreSaved() {
	require.NoError(s.T(), s.svc.AddProductToCart(s.ctx, "1", 2, models.Variant{Size: "中杯"}))
	s.svc.AddFavorite(s.ctx, "2")
	s.svc.SetUser(s.ctx, models.User{ID: "u1", Name: "小王"})

	saved := s.saved()
	require.Len(s.T(), saved.Cart, 1)
	assert.Equal(s.T(), 2, saved.Cart[0].Quantity)
	assert.Equal(s.T(), []string{"2"}, saved.Favorites)
	assert.Equal(s.T(), "小王", saved.User.Name)

	order, err := s.svc.CreateOrder(s.ctx, models.DeliveryTypeDelivery, "人民路 1 号")
	require.NoError(s.T(), err)
	saved = s.saved()
	assert.Empty(s.T(), saved.Cart)
	require.Len(s.T(), saved.Orders, 1)
	assert.Equal(s.T(), order.ID, saved.Orders[0].ID)
	assert.Equal(s.T(), 50.0, saved.Orders[0].Total)

	require.NoError(s.T(), s.svc.UpdateOrderStatus(s.ctx, order.ID, models.OrderStatusPreparing))
	assert.Equal(s.T(), models.OrderStatusPreparing, s.saved().Orders[0].Status)

	s.svc.Logout(s.ctx)
	saved = s.saved()
	assert.Nil(s.T(), saved.User)
	assert.Len(s.T(), saved.Orders, 1)
}

func (s *ServiceTestSuite) TestFailedMutationIsNotSaved() {
	err := s.svc.UpdateCartItemQuantity(s.ctx, "1", 3, models.Variant{})
	assert.ErrorIs(s.T(), err, store.ErrLineNotFound)

	err = s.svc.AddProductToCart(s.ctx, "missing", 1, models.Variant{})
	assert.ErrorIs(s.T(), err, store.ErrProductNotFound)

	_, err = s.repo.Load(s.ctx, testKey)
	assert.ErrorIs(s.T(), err, state.ErrNoState)
}

func (s *ServiceTestSuite) TestToggleFavorite() {
	assert.True(s.T(), s.svc.ToggleFavorite(s.ctx, "4"))
	assert.Equal(s.T(), []string{"4"}, s.saved().Favorites)
	assert.False(s.T(), s.svc.ToggleFavorite(s.ctx, "4"))
	assert.Empty(s.T(), s.saved().Favorites)
}

func (s *ServiceTestSuite) TestCartOperations() {
	v := models.Variant{Temperature: "冰"}
	require.NoError(s.T(), s.svc.AddToCart(s.ctx, models.Product{ID: "x", Price: 10}, 1, v))
	require.NoError(s.T(), s.svc.UpdateCartItemQuantity(s.ctx, "x", 4, v))
	assert.Equal(s.T(), 4, s.saved().Cart[0].Quantity)

	require.NoError(s.T(), s.svc.RemoveFromCart(s.ctx, "x", v))
	assert.Empty(s.T(), s.saved().Cart)

	require.NoError(s.T(), s.svc.AddToCart(s.ctx, models.Product{ID: "x", Price: 10}, 1, v))
	s.svc.ClearCart(s.ctx)
	assert.Empty(s.T(), s.saved().Cart)
}

func (s *ServiceTestSuite) TestRestore() {
	src := store.New()
	require.NoError(s.T(), src.AddToCart(models.Product{ID: "1", Price: 25}, 3, models.Variant{}))
	src.AddFavorite("1")
	require.NoError(s.T(), s.repo.Save(s.ctx, testKey, src.Snapshot()))

	require.NoError(s.T(), s.svc.Restore(s.ctx))
	s.svc.View(func(st *store.Store) {
		assert.Equal(s.T(), 3, st.CartItemCount())
		assert.True(s.T(), st.IsFavorite("1"))
	})
}

func (s *ServiceTestSuite) TestRestoreMissingOrCorrupt() {
	require.NoError(s.T(), s.svc.Restore(s.ctx))

	s.repo.Put(testKey, []byte("{oops"))
	require.NoError(s.T(), s.svc.Restore(s.ctx))
	s.svc.View(func(st *store.Store) {
		assert.Empty(s.T(), st.Cart())
		assert.Nil(s.T(), st.User())
	})
}

func TestRestoreBackendError(t *testing.T) {
	repo := &failingRepo{loadErr: errors.New("connection refused")}
	svc := NewService(store.New(), &stubLoader{}, repo, testKey, zerolog.Nop())

	assert.EqualError(t, svc.Restore(context.Background()), "connection refused")
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	repo := &failingRepo{}
	svc := NewService(store.New(), &stubLoader{}, repo, testKey, zerolog.Nop())

	require.NoError(t, svc.AddProductToCart(context.Background(), "1", 1, models.Variant{}))
	assert.Equal(t, 1, repo.saves)
	svc.View(func(st *store.Store) {
		assert.Equal(t, 1, st.CartItemCount())
	})
}
