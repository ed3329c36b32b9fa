package order

import (
	"encoding/json"
	"time"

	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/pricing"
)

// orderEvent is the JSON payload published to the order event topic.
type orderEvent struct {
	Event      string    `json:"event"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Total      float64   `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func marshalEvent(event string, o *domain.Order) ([]byte, error) {
	return json.Marshal(orderEvent{
		Event:      event,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Total:      pricing.Total(o.Burgers),
		OccurredAt: time.Now().UTC(),
	})
}
