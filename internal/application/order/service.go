package order

import (
	"context"
	"fmt"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/pricing"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/repository"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

// Publisher emits order lifecycle events. A nil publisher disables the
// stream; publish failures are logged, never surfaced, since the
// transaction has already committed.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, payload []byte) error
}

type Service struct {
	orders    repository.OrderRepository
	burgers   repository.BurgerRepository
	customers repository.CustomerRepository
	publisher Publisher
	log       logger.Logger
}

type OrderItemRef struct {
	BurgerID int64 `json:"burger_id" binding:"required"`
	Quantity int   `json:"quantity"`
}

type CreateOrderCommand struct {
	CustomerID int64          `json:"customer_id" binding:"required"`
	Items      []OrderItemRef `json:"items"`
}

// UpdateOrderCommand carries only the fields to change. A nil Items keeps
// the stored lines; a non-nil one replaces them wholesale.
type UpdateOrderCommand struct {
	CustomerID *int64          `json:"customer_id"`
	Status     *string         `json:"status"`
	Items      *[]OrderItemRef `json:"items"`
}

func NewService(
	orders repository.OrderRepository,
	burgers repository.BurgerRepository,
	customers repository.CustomerRepository,
	publisher Publisher,
	log logger.Logger,
) *Service {
	return &Service{orders: orders, burgers: burgers, customers: customers, publisher: publisher, log: log}
}

// Create validates the customer reference and the burger composition
// independently before anything is written: the customer is a single
// foreign key, not a line-item collection, so the composition validator
// does not cover it. On success the returned order is fully hydrated.
func (s *Service) Create(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	ok, err := s.customers.Exists(ctx, cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !ok {
		return nil, &apperr.ReferenceNotFoundError{Kind: "customer", ID: cmd.CustomerID}
	}

	lines, err := composition.AggregateAndValidate(ctx, burgerRefs(cmd.Items), "burger", s.burgers)
	if err != nil {
		return nil, err
	}

	o := &domain.Order{CustomerID: cmd.CustomerID, Status: domain.StatusPending}
	created, err := s.orders.Create(ctx, o, lines)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("order created",
		logger.Int64("order_id", created.ID),
		logger.Int64("customer_id", created.CustomerID),
		logger.Float64("total", pricing.Total(created.Burgers)))
	s.publish(ctx, "order.created", created)
	return created, nil
}

// Update applies the supplied fields; a missing order yields (nil, nil).
// Status accepts any of the four known values with no transition guard.
func (s *Service) Update(ctx context.Context, id int64, cmd UpdateOrderCommand) (*domain.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if existing == nil {
		s.log.Warn("order not found for update", logger.Int64("order_id", id))
		return nil, nil
	}

	if cmd.CustomerID != nil {
		ok, err := s.customers.Exists(ctx, *cmd.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("check customer: %w", err)
		}
		if !ok {
			return nil, &apperr.ReferenceNotFoundError{Kind: "customer", ID: *cmd.CustomerID}
		}
		existing.CustomerID = *cmd.CustomerID
	}

	if cmd.Status != nil {
		status, err := domain.ParseStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		existing.Status = status
	}

	var lines []composition.Line
	if cmd.Items != nil {
		lines, err = composition.AggregateAndValidate(ctx, burgerRefs(*cmd.Items), "burger", s.burgers)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.orders.Update(ctx, existing, lines)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.log.Info("order updated", logger.Int64("order_id", id), logger.String("status", string(updated.Status)))
	s.publish(ctx, "order.updated", updated)
	return updated, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	return s.orders.FindAll(ctx, offset, limit)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.orders.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	if deleted {
		s.log.Info("order deleted", logger.Int64("order_id", id))
		s.publish(ctx, "order.deleted", &domain.Order{ID: id})
	}
	return deleted, nil
}

func (s *Service) publish(ctx context.Context, event string, o *domain.Order) {
	if s.publisher == nil {
		return
	}
	payload, err := marshalEvent(event, o)
	if err != nil {
		s.log.Error("encode order event", logger.Error(err))
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, payload); err != nil {
		s.log.Warn("publish order event",
			logger.String("event", event),
			logger.Int64("order_id", o.ID),
			logger.Error(err))
	}
}

// burgerRefs translates API items into composition refs. An omitted
// quantity defaults to 1, matching the order form's calling convention.
func burgerRefs(items []OrderItemRef) []composition.Ref {
	refs := make([]composition.Ref, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		refs = append(refs, composition.Ref{ID: item.BurgerID, Quantity: qty})
	}
	return refs
}
