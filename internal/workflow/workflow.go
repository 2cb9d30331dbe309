package workflow

import (
	"fmt"
	"sort"

	"dishorder/internal/domain"
)

// IllegalTransitionError rejects a status change that the workflow does not
// permit, such as advancing or cancelling a terminal order.
type IllegalTransitionError struct {
	From      domain.Status
	Attempted domain.Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %q to %q", e.From, e.Attempted)
}

var forward = map[domain.Status]domain.Status{
	domain.StatusPending:   domain.StatusAccepted,
	domain.StatusAccepted:  domain.StatusPreparing,
	domain.StatusPreparing: domain.StatusCompleted,
}

// NextStatus reports the permitted forward status, or false when the order
// is already terminal.
func NextStatus(current domain.Status) (domain.Status, bool) {
	next, ok := forward[current]
	return next, ok
}

// CanCancel reports whether cancellation is permitted: any status that is
// not already completed or cancelled.
func CanCancel(current domain.Status) bool {
	return !current.Terminal()
}

// Advance validates a single forward step and returns the new status.
func Advance(current domain.Status) (domain.Status, error) {
	next, ok := forward[current]
	if !ok {
		return "", &IllegalTransitionError{From: current, Attempted: current}
	}
	return next, nil
}

// Transition validates an arbitrary target status: either the single
// permitted forward step or a cancellation of a non-terminal order.
func Transition(current, target domain.Status) error {
	if target == domain.StatusCancelled {
		if !CanCancel(current) {
			return &IllegalTransitionError{From: current, Attempted: target}
		}
		return nil
	}
	next, ok := forward[current]
	if !ok || next != target {
		return &IllegalTransitionError{From: current, Attempted: target}
	}
	return nil
}

// Stats are the dashboard aggregates. They are derived from the full order
// collection on every change, never cached across mutations.
type Stats struct {
	TotalOrders    int
	PendingCount   int
	CompletedCount int
	Revenue        float64
}

// Summarize recomputes the aggregates; revenue counts completed orders only.
func Summarize(orders []domain.Order) Stats {
	s := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			s.PendingCount++
		case domain.StatusCompleted:
			s.CompletedCount++
			s.Revenue += o.TotalAmount
		}
	}
	return s
}

// SortByRecency orders the collection newest first, in place. It is applied
// before filtering so filters preserve recency order.
func SortByRecency(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// FilterByStatus returns the matching subsequence; "all" (or empty) keeps
// everything. Relative order is preserved.
func FilterByStatus(orders []domain.Order, filter string) []domain.Order {
	if filter == "" || filter == "all" {
		out := make([]domain.Order, len(orders))
		copy(out, orders)
		return out
	}
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == filter {
			out = append(out, o)
		}
	}
	return out
}
