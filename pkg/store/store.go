package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.connectwisedev.com/coffee-service/models"
)

const createTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Store holds the storefront state: catalog, cart, favorites, orders and
// user. It performs no I/O and is not safe for concurrent use; callers
// serialize access.
type Store struct {
	user      *models.User
	cart      []models.CartLine
	orders    []models.Order
	favorites []string
	products  []models.Product

	loading       bool
	productsError string

	now         func() time.Time
	lastOrderID int64
}

type Option func(*Store)

// WithClock overrides the time source used for order ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithCatalog sets the initial catalog instead of DefaultMenu.
func WithCatalog(products []models.Product) Option {
	return func(s *Store) {
		s.products = slices.Clone(products)
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		products: DefaultMenu(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BeginLoad marks a catalog load as in flight.
func (s *Store) BeginLoad() {
	s.loading = true
	s.productsError = ""
}

// ApplyCatalog replaces the catalog wholesale with a loaded one.
func (s *Store) ApplyCatalog(products []models.Product) {
	s.products = slices.Clone(products)
	s.productsError = ""
	s.loading = false
}

// ApplyCatalogError records a failed load and swaps in FallbackCatalog.
func (s *Store) ApplyCatalogError(err error) {
	s.productsError = err.Error()
	s.products = FallbackCatalog()
	s.loading = false
}

func (s *Store) AddToCart(p models.Product, quantity int, v models.Variant) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if i := s.lineIndex(p.ID, v); i >= 0 {
		s.cart[i].Quantity += quantity
		return nil
	}
	s.cart = append(s.cart, models.CartLine{
		Product:     p,
		Quantity:    quantity,
		Size:        v.Size,
		Temperature: v.Temperature,
	})
	return nil
}

// RemoveFromCart deletes the line keyed by (productID, v). The cart is left
// untouched when no such line exists.
func (s *Store) RemoveFromCart(productID string, v models.Variant) error {
	i := s.lineIndex(productID, v)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, productID)
	}
	s.cart = slices.Delete(s.cart, i, i+1)
	return nil
}

// UpdateCartItemQuantity sets an absolute quantity. A quantity <= 0 removes
// the line.
func (s *Store) UpdateCartItemQuantity(productID string, quantity int, v models.Variant) error {
	i := s.lineIndex(productID, v)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, productID)
	}
	if quantity <= 0 {
		s.cart = slices.Delete(s.cart, i, i+1)
		return nil
	}
	s.cart[i].Quantity = quantity
	return nil
}

func (s *Store) ClearCart() {
	s.cart = nil
}

func (s *Store) AddFavorite(productID string) {
	if !s.IsFavorite(productID) {
		s.favorites = append(s.favorites, productID)
	}
}

func (s *Store) RemoveFavorite(productID string) {
	s.favorites = slices.DeleteFunc(s.favorites, func(id string) bool { return id == productID })
}

// ToggleFavorite flips membership and reports whether the product is now a
// favorite.
func (s *Store) ToggleFavorite(productID string) bool {
	if s.IsFavorite(productID) {
		s.RemoveFavorite(productID)
		return false
	}
	s.AddFavorite(productID)
	return true
}

func (s *Store) IsFavorite(productID string) bool {
	return slices.Contains(s.favorites, productID)
}

// CreateOrder snapshots the cart into a pending order, prepends it to the
// history and empties the cart.
func (s *Store) CreateOrder(deliveryType models.DeliveryType, address string) (models.Order, error) {
	if !deliveryType.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidDeliveryType, deliveryType)
	}
	if deliveryType == models.DeliveryTypeDelivery && address == "" {
		return models.Order{}, ErrAddressRequired
	}
	if deliveryType == models.DeliveryTypePickup {
		address = ""
	}

	now := s.now().UTC()
	order := models.Order{
		ID:           s.nextOrderID(now),
		Items:        slices.Clone(s.cart),
		Total:        s.CartTotalPrice(),
		Status:       models.OrderStatusPending,
		CreateTime:   now.Format(createTimeLayout),
		DeliveryType: deliveryType,
		Address:      address,
	}
	if order.Items == nil {
		order.Items = []models.CartLine{}
	}

	s.orders = slices.Insert(s.orders, 0, order)
	s.ClearCart()
	return cloneOrder(order), nil
}

// UpdateOrderStatus overwrites the status of an order. Any transition
// between valid statuses is allowed.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}

func (s *Store) SetUser(u models.User) {
	s.user = &u
}

// Logout clears the user only; cart, favorites and orders stay.
func (s *Store) Logout() {
	s.user = nil
}

// order ids are time derived and strictly increasing within a store
func (s *Store) nextOrderID(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= s.lastOrderID {
		ms = s.lastOrderID + 1
	}
	s.lastOrderID = ms
	return fmt.Sprintf("order_%d", ms)
}

func (s *Store) lineIndex(productID string, v models.Variant) int {
	return slices.IndexFunc(s.cart, func(l models.CartLine) bool {
		return l.Matches(productID, v)
	})
}

// Derived views.

func (s *Store) CartItemCount() int {
	n := 0
	for _, l := range s.cart {
		n += l.Quantity
	}
	return n
}

func (s *Store) CartTotalPrice() float64 {
	return lineTotal(s.cart)
}

func lineTotal(lines []models.CartLine) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total.InexactFloat64()
}

// FavoriteProducts lists catalog products whose id is a favorite, in
// catalog order. Favorites missing from the catalog are skipped.
func (s *Store) FavoriteProducts() []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if s.IsFavorite(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists the distinct catalog categories in first-seen order.
func (s *Store) Categories() []models.Category {
	out := []models.Category{}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, models.Category{ID: len(out), Name: p.Category, Icon: CategoryIcon})
	}
	return out
}

func (s *Store) Product(id string) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

func (s *Store) Products() []models.Product {
	return slices.Clone(s.products)
}

func (s *Store) Cart() []models.CartLine {
	return slices.Clone(s.cart)
}

func (s *Store) Orders() []models.Order {
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (s *Store) Favorites() []string {
	return slices.Clone(s.favorites)
}

func (s *Store) User() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Loading() bool {
	return s.loading
}

func (s *Store) ProductsError() string {
	return s.productsError
}

func cloneOrder(o models.Order) models.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
