package statemachine

import (
	"errors"

	"restaurant-api/models"
)

// Actor identifiers for order status transitions
const (
	ActorGateway = "gateway"
	ActorAdmin   = "admin"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition.
// The payment gateway confirms a pending order on successful verification;
// admins may confirm manually (phone/cash orders) and may close out any
// non-terminal order. Delivered and Cancelled are terminal.
var validTransitions = []Transition{
	{From: models.StatusPendingConfirmation, To: models.StatusConfirmed, Actor: ActorGateway},
	{From: models.StatusPendingConfirmation, To: models.StatusConfirmed, Actor: ActorAdmin},
	{From: models.StatusPendingConfirmation, To: models.StatusDelivered, Actor: ActorAdmin},
	{From: models.StatusPendingConfirmation, To: models.StatusCancelled, Actor: ActorAdmin},
	{From: models.StatusConfirmed, To: models.StatusDelivered, Actor: ActorAdmin},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorAdmin},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// NextStates returns all valid next states from a given state
func NextStates(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return len(NextStates(status)) == 0
}

// CanTransition checks if a given actor can move an order from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := NextStates(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
