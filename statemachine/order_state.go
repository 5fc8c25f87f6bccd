package statemachine

import (
	"strings"
	"time"

	"ordereat-api/apperr"
	"ordereat-api/models"
)

// Transition is a valid status change and the operation that performs it.
type Transition struct {
	From      models.OrderStatus `json:"from"`
	To        models.OrderStatus `json:"to"`
	Operation string             `json:"operation"`
}

// validTransitions is the whole lifecycle. REALIZED is a declared state with no inbound
// transition yet.
var validTransitions = []Transition{
	{From: models.StatusCreated, To: models.StatusOrdered, Operation: "realize"},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// Messages returned by Realize.
const (
	MsgNeedsDishes     = "You need to add dishes to order"
	MsgAlreadyRealized = "This order is already realized"
	MsgFinished        = "This order is finished"
)

// ValidTransitionsFrom returns the states reachable from status in one step.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition reports whether from → to is part of the lifecycle.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return apperr.BadRequest("invalid transition: %s → %s. Valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

// Realize moves an order from CREATED to ORDERED and stamps the order date. Every guard
// runs before the order is touched, so a failed call leaves it unchanged.
func Realize(order *models.Order, now time.Time) error {
	if len(order.OrderedDishes) == 0 {
		return apperr.BadRequest(MsgNeedsDishes)
	}
	switch order.Status {
	case models.StatusOrdered:
		return apperr.BadRequest(MsgAlreadyRealized)
	case models.StatusRealized:
		return apperr.BadRequest(MsgFinished)
	}
	if err := CanTransition(order.Status, models.StatusOrdered); err != nil {
		return err
	}

	order.OrderDate = &now
	order.Status = models.StatusOrdered
	return nil
}

// AcceptsDishes reports whether lines may still be added to an order in this status.
func AcceptsDishes(status models.OrderStatus) bool {
	return status == models.StatusCreated
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the lifecycle for documentation.
func GetAllTransitions() []Transition {
	return validTransitions
}
