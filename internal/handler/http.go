package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"payments-service/internal/entities"
	"payments-service/internal/stripe"
	"payments-service/pkg/utils"
)

type PaymentService interface {
	BuyItem(ctx context.Context, itemID uuid.UUID) (string, error)
	BuyOrder(ctx context.Context, orderID uuid.UUID) (string, error)
	CreatePaymentIntent(ctx context.Context, itemID uuid.UUID) (entities.PaymentIntent, error)
}

type PaymentHandler struct {
	logger *slog.Logger
	svc    PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger: logger.With(slog.String("handler", "payment")),
		svc:    svc,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Post("/buy/item/{item_id}", h.BuyItem)
	r.Post("/buy/order/{order_id}", h.BuyOrder)
	r.Post("/payment-intent/{item_id}", h.CreatePaymentIntent)
}

// BuyItem создает Stripe checkout session для покупки товара.
// @Summary      Buy a single item
// @Description  Creates a Stripe checkout session for one item
// @Tags         payments
// @Param        item_id  path  string  true  "Item ID"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid item id"
// @Failure      404  {object}  utils.ErrorResponse "Item not found"
// @Failure      500  {object}  utils.ErrorResponse "Processor failure"
// @Router       /buy/item/{item_id} [post]
func (h *PaymentHandler) BuyItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	sessionID, err := h.svc.BuyItem(ctx, itemID)
	if err != nil {
		h.writePaymentError(ctx, w, err, "failed to buy item")
		return
	}

	utils.WriteJSON(w, SessionResponse{ID: sessionID}, http.StatusOK)
}

// BuyOrder создает Stripe checkout session для оплаты заказа.
// @Summary      Buy an order
// @Description  Creates a Stripe checkout session for all items of an order
// @Tags         payments
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid order id"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Processor failure"
// @Router       /buy/order/{order_id} [post]
func (h *PaymentHandler) BuyOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	sessionID, err := h.svc.BuyOrder(ctx, orderID)
	if err != nil {
		h.writePaymentError(ctx, w, err, "failed to buy order")
		return
	}

	utils.WriteJSON(w, SessionResponse{ID: sessionID}, http.StatusOK)
}

// CreatePaymentIntent создает Stripe payment intent для товара.
// @Summary      Create a payment intent
// @Description  Creates a Stripe payment intent for one item
// @Tags         payments
// @Param        item_id  path  string  true  "Item ID"
// @Success      200  {object}  IntentResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid item id"
// @Failure      404  {object}  utils.ErrorResponse "Item not found"
// @Failure      500  {object}  utils.ErrorResponse "Processor failure"
// @Router       /payment-intent/{item_id} [post]
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	intent, err := h.svc.CreatePaymentIntent(ctx, itemID)
	if err != nil {
		h.writePaymentError(ctx, w, err, "failed to create payment intent")
		return
	}

	utils.WriteJSON(w, IntentResponse{
		ClientSecret:   intent.ClientSecret,
		PublishableKey: intent.PublishableKey,
	}, http.StatusOK)
}

func (h *PaymentHandler) writePaymentError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrItemNotFound):
		utils.WriteError(w, "item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	default:
		var procErr *stripe.Error
		if errors.As(err, &procErr) {
			h.logger.ErrorContext(ctx, msg,
				slog.Any("error", err), slog.String("kind", string(procErr.Kind)))
			utils.WriteError(w, procErr.Message, http.StatusInternalServerError)
			return
		}

		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
