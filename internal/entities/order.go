package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        uuid.UUID
	CreatedAt time.Time

	// Items хранится в порядке добавления, дубликаты допустимы.
	// Discount и Tax опциональны, ссылки обнуляются при удалении.
	Items    []Item
	Discount *Discount
	Tax      *Tax
}

// PaymentIntent возвращается клиенту для завершения оплаты на фронтенде.
type PaymentIntent struct {
	ClientSecret   string
	PublishableKey string
}
