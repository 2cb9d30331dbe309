package cart

import (
	"errors"
	"math"

	"dishorder/internal/domain"
)

var ErrLineNotFound = errors.New("dish is not in the cart")

// Cart aggregates dish selections into at most one line per dish id.
// It is not safe for concurrent use; each view owns exactly one cart and
// mutates it serially.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// FromLines rebuilds a cart from a persisted snapshot. Lines with a
// non-positive quantity are dropped rather than kept at zero.
func FromLines(lines []domain.CartLine) *Cart {
	c := &Cart{}
	for _, line := range lines {
		if line.Quantity > 0 {
			c.lines = append(c.lines, line)
		}
	}
	return c
}

// AddOrIncrement merges the dish into the cart: an existing line grows by
// qty, a new line is appended with a snapshot of the dish's current name
// and price. Existing line order is preserved.
func (c *Cart) AddOrIncrement(dish domain.Dish, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].DishID == dish.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		DishID:   dish.ID,
		DishName: dish.Name,
		Price:    dish.Price,
		Quantity: qty,
	})
}

// Decrement lowers the line's quantity by one, removing the line entirely
// when it would reach zero.
func (c *Cart) Decrement(dishID int) error {
	for i := range c.lines {
		if c.lines[i].DishID != dishID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return nil
	}
	return ErrLineNotFound
}

// Remove drops the line regardless of quantity.
func (c *Cart) Remove(dishID int) error {
	for i := range c.lines {
		if c.lines[i].DishID == dishID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Total is the authoritative unrounded sum of price*quantity.
func (c *Cart) Total() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// DisplayTotal rounds the total to 2 decimal places for presentation only.
func (c *Cart) DisplayTotal() float64 {
	return math.Round(c.Total()*100) / 100
}

// ItemCount is the badge count: the sum of all line quantities.
func (c *Cart) ItemCount() int {
	var n int
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines exposes the full cart state for snapshot persistence after each
// mutation. The returned slice is a copy.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// OrderItems copies the cart into the order payload shape used at
// submission time.
func (c *Cart) OrderItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, domain.OrderItem{
			DishName: line.DishName,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	return items
}
