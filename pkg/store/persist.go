package store

import (
	"strconv"
	"strings"

	"gitlab.connectwisedev.com/coffee-service/models"
)

// Snapshot copies the persisted subset of the state.
func (s *Store) Snapshot() models.PersistedState {
	state := models.PersistedState{
		Cart:      s.Cart(),
		Favorites: s.Favorites(),
		Orders:    s.Orders(),
		User:      s.User(),
	}
	if state.Cart == nil {
		state.Cart = []models.CartLine{}
	}
	if state.Favorites == nil {
		state.Favorites = []string{}
	}
	return state
}

// Restore replaces the persisted subset with a previously saved state.
// Lines with a non-positive quantity are dropped, lines sharing a key are
// merged and duplicate favorites collapse, so a hand-edited or stale record
// cannot break the cart or favorite invariants.
func (s *Store) Restore(state models.PersistedState) {
	s.cart = nil
	for _, l := range state.Cart {
		if l.Quantity <= 0 {
			continue
		}
		if i := s.lineIndex(l.ID, l.Variant()); i >= 0 {
			s.cart[i].Quantity += l.Quantity
			continue
		}
		s.cart = append(s.cart, l)
	}

	s.favorites = nil
	for _, id := range state.Favorites {
		s.AddFavorite(id)
	}

	s.orders = make([]models.Order, 0, len(state.Orders))
	for _, o := range state.Orders {
		s.orders = append(s.orders, cloneOrder(o))
	}

	s.user = nil
	if state.User != nil {
		u := *state.User
		s.user = &u
	}
	s.lastOrderID = maxOrderMillis(s.orders)
}

// Reset drops the persisted subset back to an empty state.
func (s *Store) Reset() {
	s.Restore(models.PersistedState{})
}

// order ids restored from storage must not be reissued
func maxOrderMillis(orders []models.Order) int64 {
	var highest int64
	for _, o := range orders {
		ms, err := strconv.ParseInt(strings.TrimPrefix(o.ID, "order_"), 10, 64)
		if err == nil && ms > highest {
			highest = ms
		}
	}
	return highest
}
