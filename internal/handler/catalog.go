package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"payments-service/internal/entities"
	"payments-service/pkg/utils"
)

type CatalogService interface {
	CreateItem(ctx context.Context, it entities.Item) (entities.Item, error)
	UpdateItem(ctx context.Context, it entities.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	GetItem(ctx context.Context, itemID uuid.UUID) (entities.Item, error)
	ListItems(ctx context.Context) ([]entities.Item, error)

	CreateDiscount(ctx context.Context, d entities.Discount) (entities.Discount, error)
	ListDiscounts(ctx context.Context) ([]entities.Discount, error)
	DeleteDiscount(ctx context.Context, discountID uuid.UUID) error

	CreateTax(ctx context.Context, t entities.Tax) (entities.Tax, error)
	ListTaxes(ctx context.Context) ([]entities.Tax, error)
	DeleteTax(ctx context.Context, taxID uuid.UUID) error

	CreateOrder(ctx context.Context, itemIDs []uuid.UUID, discountID, taxID *uuid.UUID) (entities.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/items", h.ListItems)
	r.Get("/items/{item_id}", h.GetItem)

	// Админский CRUD каталога, авторизация — забота внешнего слоя
	r.Route("/admin", func(r chi.Router) {
		r.Post("/items", h.CreateItem)
		r.Put("/items/{item_id}", h.UpdateItem)
		r.Delete("/items/{item_id}", h.DeleteItem)

		r.Get("/discounts", h.ListDiscounts)
		r.Post("/discounts", h.CreateDiscount)
		r.Delete("/discounts/{discount_id}", h.DeleteDiscount)

		r.Get("/taxes", h.ListTaxes)
		r.Post("/taxes", h.CreateTax)
		r.Delete("/taxes/{tax_id}", h.DeleteTax)

		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Delete("/orders/{order_id}", h.DeleteOrder)
	})
}

// ListItems возвращает все товары каталога.
// @Summary      List items
// @Tags         catalog
// @Success      200  {array}  Item
// @Router       /items [get]
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to list items")
		return
	}

	result := make([]Item, 0, len(items))
	for _, it := range items {
		result = append(result, ItemEntityToJSON(it))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// GetItem возвращает товар по id.
// @Summary      Get item by id
// @Tags         catalog
// @Param        item_id  path  string  true  "Item ID"
// @Success      200  {object}  Item
// @Failure      404  {object}  utils.ErrorResponse "Item not found"
// @Router       /items/{item_id} [get]
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.svc.GetItem(r.Context(), itemID)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to get item")
		return
	}

	utils.WriteJSON(w, ItemEntityToJSON(item), http.StatusOK)
}

// CreateItem добавляет товар.
// @Summary      Create item
// @Tags         admin
// @Param        request  body  CreateItemRequest  true  "Item"
// @Success      201  {object}  Item
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /admin/items [post]
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if req.Price.IsNegative() {
		utils.WriteError(w, "price must be non-negative", http.StatusBadRequest)
		return
	}

	item, err := h.svc.CreateItem(r.Context(), CreateItemRequestToEntity(req))
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to create item")
		return
	}

	utils.WriteJSON(w, ItemEntityToJSON(item), http.StatusCreated)
}

// UpdateItem изменяет товар.
// @Summary      Update item
// @Tags         admin
// @Param        item_id  path  string  true  "Item ID"
// @Param        request  body  CreateItemRequest  true  "Item"
// @Success      200  {object}  Item
// @Failure      404  {object}  utils.ErrorResponse "Item not found"
// @Router       /admin/items/{item_id} [put]
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req CreateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if req.Price.IsNegative() {
		utils.WriteError(w, "price must be non-negative", http.StatusBadRequest)
		return
	}

	item := CreateItemRequestToEntity(req)
	item.ID = itemID
	if err := h.svc.UpdateItem(r.Context(), item); err != nil {
		h.writeError(r.Context(), w, err, "failed to update item")
		return
	}

	utils.WriteJSON(w, ItemEntityToJSON(item), http.StatusOK)
}

// DeleteItem удаляет товар.
// @Summary      Delete item
// @Tags         admin
// @Param        item_id  path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Item not found"
// @Router       /admin/items/{item_id} [delete]
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), itemID); err != nil {
		h.writeError(r.Context(), w, err, "failed to delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListDiscounts возвращает все скидки.
// @Summary      List discounts
// @Tags         admin
// @Success      200  {array}  Discount
// @Router       /admin/discounts [get]
func (h *CatalogHandler) ListDiscounts(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.svc.ListDiscounts(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to list discounts")
		return
	}

	result := make([]Discount, 0, len(discounts))
	for _, d := range discounts {
		result = append(result, DiscountEntityToJSON(d))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// CreateDiscount добавляет скидку.
// @Summary      Create discount
// @Tags         admin
// @Param        request  body  CreateDiscountRequest  true  "Discount"
// @Success      201  {object}  Discount
// @Router       /admin/discounts [post]
func (h *CatalogHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var req CreateDiscountRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	discount, err := h.svc.CreateDiscount(r.Context(), CreateDiscountRequestToEntity(req))
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to create discount")
		return
	}

	utils.WriteJSON(w, DiscountEntityToJSON(discount), http.StatusCreated)
}

// DeleteDiscount удаляет скидку, ссылки заказов обнуляются.
// @Summary      Delete discount
// @Tags         admin
// @Param        discount_id  path  string  true  "Discount ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Discount not found"
// @Router       /admin/discounts/{discount_id} [delete]
func (h *CatalogHandler) DeleteDiscount(w http.ResponseWriter, r *http.Request) {
	discountID, err := uuid.Parse(chi.URLParam(r, "discount_id"))
	if err != nil {
		utils.WriteError(w, "invalid discount id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteDiscount(r.Context(), discountID); err != nil {
		h.writeError(r.Context(), w, err, "failed to delete discount")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTaxes возвращает все налоги.
// @Summary      List taxes
// @Tags         admin
// @Success      200  {array}  Tax
// @Router       /admin/taxes [get]
func (h *CatalogHandler) ListTaxes(w http.ResponseWriter, r *http.Request) {
	taxes, err := h.svc.ListTaxes(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to list taxes")
		return
	}

	result := make([]Tax, 0, len(taxes))
	for _, t := range taxes {
		result = append(result, TaxEntityToJSON(t))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// CreateTax добавляет налог.
// @Summary      Create tax
// @Tags         admin
// @Param        request  body  CreateTaxRequest  true  "Tax"
// @Success      201  {object}  Tax
// @Router       /admin/taxes [post]
func (h *CatalogHandler) CreateTax(w http.ResponseWriter, r *http.Request) {
	var req CreateTaxRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	tax, err := h.svc.CreateTax(r.Context(), CreateTaxRequestToEntity(req))
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to create tax")
		return
	}

	utils.WriteJSON(w, TaxEntityToJSON(tax), http.StatusCreated)
}

// DeleteTax удаляет налог, ссылки заказов обнуляются.
// @Summary      Delete tax
// @Tags         admin
// @Param        tax_id  path  string  true  "Tax ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Tax not found"
// @Router       /admin/taxes/{tax_id} [delete]
func (h *CatalogHandler) DeleteTax(w http.ResponseWriter, r *http.Request) {
	taxID, err := uuid.Parse(chi.URLParam(r, "tax_id"))
	if err != nil {
		utils.WriteError(w, "invalid tax id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteTax(r.Context(), taxID); err != nil {
		h.writeError(r.Context(), w, err, "failed to delete tax")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOrders возвращает заказы, новые первыми.
// @Summary      List orders
// @Tags         admin
// @Success      200  {array}  Order
// @Router       /admin/orders [get]
func (h *CatalogHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to list orders")
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// CreateOrder собирает заказ из товаров с опциональными скидкой и налогом.
// @Summary      Create order
// @Tags         admin
// @Param        request  body  CreateOrderRequest  true  "Order"
// @Success      201  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Referenced entity not found"
// @Router       /admin/orders [post]
func (h *CatalogHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), req.ItemIDs, req.DiscountID, req.TaxID)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ по id.
// @Summary      Get order by id
// @Tags         admin
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /admin/orders/{order_id} [get]
func (h *CatalogHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrder(r.Context(), orderID)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Delete order
// @Tags         admin
// @Param        order_id  path  string  true  "Order ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /admin/orders/{order_id} [delete]
func (h *CatalogHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), orderID); err != nil {
		h.writeError(r.Context(), w, err, "failed to delete order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrItemNotFound):
		utils.WriteError(w, "item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrDiscountNotFound):
		utils.WriteError(w, "discount not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrTaxNotFound):
		utils.WriteError(w, "tax not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidItem):
		utils.WriteError(w, "invalid item", http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
