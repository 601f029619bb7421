package models

// Legal order status moves. Every status write in the service layer goes
// through CanTransition so no handler can invent a move ad hoc.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
	OrderDelivered: {},
	OrderCancelled: {},
}

var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnPending:   {ReturnApproved},
	ReturnApproved:  {ReturnProcessed},
	ReturnProcessed: {ReturnCompleted},
	ReturnCompleted: {},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanCancel reports whether a customer cancellation is still permitted.
func (s OrderStatus) CanCancel() bool {
	return s == OrderPending || s == OrderConfirmed
}

// CanRequestReturn reports whether a return request is permitted.
func (s OrderStatus) CanRequestReturn() bool {
	return s == OrderShipped || s == OrderDelivered
}

func (s ReturnStatus) CanTransition(to ReturnStatus) bool {
	for _, next := range returnTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ReturnStatus) IsValid() bool {
	_, ok := returnTransitions[s]
	return ok
}
