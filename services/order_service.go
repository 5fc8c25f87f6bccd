package services

import (
	"context"
	"time"

	"ordereat-api/apperr"
	"ordereat-api/authz"
	"ordereat-api/events"
	"ordereat-api/models"
	"ordereat-api/statemachine"

	"github.com/sirupsen/logrus"
)

// PublishTimeout bounds delivery of an event for an order that is already committed.
const PublishTimeout = 5 * time.Second

type OrderService struct {
	Orders    OrderRepository
	Dishes    DishRepository
	Publisher OrderEventPublisher
	Now       func() time.Time
}

func NewOrderService(orders OrderRepository, dishes DishRepository, publisher OrderEventPublisher) *OrderService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &OrderService{Orders: orders, Dishes: dishes, Publisher: publisher, Now: time.Now}
}

// Create opens an order for the caller with the given dishes, which may be empty.
func (s *OrderService) Create(ctx context.Context, p authz.Principal, dishIDs []uint) (*models.Order, error) {
	order := &models.Order{Status: models.StatusCreated}
	if p.ID != 0 {
		customer := p.ID
		order.CustomerID = &customer
	}
	if authz.Authorize(p, authz.OrderResource(order), authz.Create) == authz.Denied {
		return nil, apperr.Forbidden()
	}
	for _, dishID := range dishIDs {
		if err := s.requireDish(ctx, dishID); err != nil {
			return nil, err
		}
		order.OrderedDishes = append(order.OrderedDishes, models.OrderedDish{DishID: dishID})
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"order_id": order.ID, "customer_id": p.ID, "dishes": len(dishIDs)}).Info("order created")
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, p authz.Principal, id uint) (*models.Order, error) {
	return s.authorized(ctx, p, id, authz.Read)
}

// AddDish appends a dish to an order that has not been realized yet.
func (s *OrderService) AddDish(ctx context.Context, p authz.Principal, id, dishID uint) (*models.Order, error) {
	order, err := s.authorized(ctx, p, id, authz.Update)
	if err != nil {
		return nil, err
	}
	if !statemachine.AcceptsDishes(order.Status) {
		return nil, apperr.BadRequest("Dishes can only be added while the order is %s", models.StatusCreated)
	}
	if err := s.requireDish(ctx, dishID); err != nil {
		return nil, err
	}
	if _, err := s.Orders.AddDish(ctx, order, dishID); err != nil {
		return nil, err
	}
	return order, nil
}

// Realize places the order. The order is persisted before the event is published; a
// publishing failure is logged and does not fail the call.
func (s *OrderService) Realize(ctx context.Context, p authz.Principal, id uint) (*models.Order, error) {
	order, err := s.authorized(ctx, p, id, authz.Update)
	if err != nil {
		return nil, err
	}
	from := order.Status
	if err := statemachine.Realize(order, s.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.Orders.Commit(ctx, order); err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{"order_id": order.ID, "from": from, "to": order.Status})
	log.Info("order realized")

	evt := events.OrderRealized{
		Type:       events.TypeOrderRealized,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		DishIDs:    order.DishIDs(),
		OrderDate:  *order.OrderDate,
		Timestamp:  s.Now().UTC(),
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()
	if err := s.Publisher.PublishOrderRealized(pubCtx, evt); err != nil {
		log.WithError(err).Error("publish order.realized failed")
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, p authz.Principal, id uint) error {
	order, err := s.authorized(ctx, p, id, authz.Delete)
	if err != nil {
		return err
	}
	return s.Orders.Delete(ctx, order)
}

func (s *OrderService) authorized(ctx context.Context, p authz.Principal, id uint, op authz.Operation) (*models.Order, error) {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}
	if authz.Authorize(p, authz.OrderResource(order), op) == authz.Denied {
		logrus.WithFields(logrus.Fields{"order_id": id, "user_id": p.ID, "operation": op}).Warn("order access denied")
		return nil, apperr.Forbidden()
	}
	return order, nil
}

func (s *OrderService) requireDish(ctx context.Context, id uint) error {
	dish, err := s.Dishes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dish == nil {
		return apperr.NotFound("Dish not found")
	}
	return nil
}
