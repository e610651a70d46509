package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gitlab.connectwisedev.com/coffee-service/models"
	"gitlab.connectwisedev.com/coffee-service/pkg/storefront"
	"gitlab.connectwisedev.com/coffee-service/pkg/store"
)

type Handler struct {
	svc *storefront.Service
}

func NewHandler(svc *storefront.Service) *Handler {
	if svc == nil {
		panic("storefront service cannot be nil")
	}
	return &Handler{svc: svc}
}

func variantFromQuery(r *http.Request) models.Variant {
	q := r.URL.Query()
	return models.Variant{Size: q.Get("size"), Temperature: q.Get("temperature")}
}

// NewCatalogResponse captures the catalog and its load state.
func NewCatalogResponse(st *store.Store) CatalogResponse {
	return CatalogResponse{
		Products: st.Products(),
		Loading:  st.Loading(),
		Error:    st.ProductsError(),
	}
}

func (h *Handler) catalog() CatalogResponse {
	var res CatalogResponse
	h.svc.View(func(st *store.Store) { res = NewCatalogResponse(st) })
	return res
}

func (h *Handler) cart() CartResponse {
	var res CartResponse
	h.svc.View(func(st *store.Store) {
		res = CartResponse{
			Items:      st.Cart(),
			ItemCount:  st.CartItemCount(),
			TotalPrice: st.CartTotalPrice(),
		}
	})
	if res.Items == nil {
		res.Items = []models.CartLine{}
	}
	return res
}

// ListProducts serves the catalog. With ?refresh=1 it reloads first, the
// way opening the menu does; a failed reload still answers 200 with the
// fallback menu and the error text.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "1" {
		h.svc.EnterCatalog(r.Context())
	}
	SuccessJSON(w, http.StatusOK, h.catalog())
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	var (
		p   models.Product
		err error
	)
	h.svc.View(func(st *store.Store) {
		p, err = st.Product(chi.URLParam(r, "productID"))
	})
	if err != nil {
		ErrorJSON(w, statusFor(err), err.Error())
		return
	}
	SuccessJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	var cats []models.Category
	h.svc.View(func(st *store.Store) { cats = st.Categories() })
	SuccessJSON(w, http.StatusOK, cats)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	SuccessJSON(w, http.StatusOK, h.cart())
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	v := models.Variant{Size: req.Size, Temperature: req.Temperature}
	if err := h.svc.AddProductToCart(r.Context(), req.ProductID, quantity, v); err != nil {
		ErrorJSON(w, statusFor(err), err.Error())
		return
	}
	SuccessJSON(w, http.StatusOK, h.cart())
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v := models.Variant{Size: req.Size, Temperature: req.Temperature}
	if err := h.svc.UpdateCartItemQuantity(r.Context(), chi.URLParam(r, "productID"), req.Quantity, v); err != nil {
		ErrorJSON(w, statusFor(err), err.Error())
		return
	}
	SuccessJSON(w, http.StatusOK, h.cart())
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFromCart(r.Context(), chi.URLParam(r, "productID"), variantFromQuery(r)); err != nil {
		ErrorJSON(w, statusFor(err), err.Error())
		return
	}
	SuccessJSON(w, http.StatusOK, h.cart())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCart(r.Context())
	SuccessJSON(w, http.StatusOK, h.cart())
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	h.svc.View(func(st *store.Store) { products = st.FavoriteProducts() })
	SuccessJSON(w, http.StatusOK, products)
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	h.svc.AddFavorite(r.Context(), id)
	SuccessJSON(w, http.StatusOK, FavoriteResponse{ProductID: id, Favorite: true})
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	h.svc.RemoveFavorite(r.Context(), id)
	SuccessJSON(w, http.StatusOK, FavoriteResponse{ProductID: id, Favorite: false})
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	on := h.svc.ToggleFavorite(r.Context(), id)
	SuccessJSON(w, http.StatusOK, FavoriteResponse{ProductID: id, Favorite: on})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var orders []models.Order
	h.svc.View(func(st *store.Store) { orders = st.Orders() })
	SuccessJSON(w, http.StatusOK, orders)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.svc.CreateOrder(r.Context(), req.DeliveryType, req.Address)
	if err != nil {
		ErrorJSON(w, statusFor(err), err.Error())
		return
	}
	SuccessJSON(w, http.StatusCreated, order)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderID"), req.Status); err != nil {
		ErrorJSON(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	var u *models.User
	h.svc.View(func(st *store.Store) { u = st.User() })
	if u == nil {
		ErrorJSON(w, http.StatusNotFound, "not signed in")
		return
	}
	SuccessJSON(w, http.StatusOK, u)
}

func (h *Handler) SetUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil || u.ID == "" {
		ErrorJSON(w, http.StatusBadRequest, "invalid user")
		return
	}
	h.svc.SetUser(r.Context(), u)
	SuccessJSON(w, http.StatusOK, u)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
