package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dishorder/internal/domain"
)

var (
	dishA = domain.Dish{ID: 1, Name: "Braised Pork Rice", Price: 10.00}
	dishB = domain.Dish{ID: 2, Name: "Soy Milk", Price: 3.00}
)

func TestAddOrIncrement_MergesSameDish(t *testing.T) {
	c := New()
	c.AddOrIncrement(dishA, 1)
	c.AddOrIncrement(dishB, 2)
	c.AddOrIncrement(dishA, 3)

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, dishA.Name, lines[0].DishName)
	// existing lines keep their position, new lines append
	assert.Equal(t, dishB.ID, lines[1].DishID)
	assert.Equal(t, 6, c.ItemCount())
}

func TestAddOrIncrement_SnapshotsPrice(t *testing.T) {
	c := New()
	c.AddOrIncrement(dishA, 1)

	changed := dishA
	changed.Price = 99.99
	changed.Name = "renamed"
	c.AddOrIncrement(changed, 1)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	// the merge increments quantity but keeps the original snapshot
	assert.Equal(t, 10.00, lines[0].Price)
	assert.Equal(t, "Braised Pork Rice", lines[0].DishName)
}

func TestDecrement(t *testing.T) {
	c := New()
	c.AddOrIncrement(dishA, 2)
	c.AddOrIncrement(dishB, 1)

	assert.NoError(t, c.Decrement(dishA.ID))
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	// quantity 1: the line is removed, not kept at zero
	assert.NoError(t, c.Decrement(dishA.ID))
	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, dishB.ID, lines[0].DishID)

	assert.ErrorIs(t, c.Decrement(dishA.ID), ErrLineNotFound)
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.AddOrIncrement(dishA, 5)
	c.AddOrIncrement(dishB, 1)

	assert.NoError(t, c.Remove(dishA.ID))
	assert.Len(t, c.Lines(), 1)
	assert.ErrorIs(t, c.Remove(99), ErrLineNotFound)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, 0.0, c.Total())
}

func TestTotal(t *testing.T) {
	c := New()
	assert.Equal(t, 0.0, c.Total())

	c.AddOrIncrement(dishA, 2)
	c.AddOrIncrement(dishB, 3)
	assert.InDelta(t, 29.00, c.Total(), 1e-9)
	assert.InDelta(t, 29.00, c.DisplayTotal(), 1e-9)
}

func TestDisplayTotal_Rounds(t *testing.T) {
	c := New()
	c.AddOrIncrement(domain.Dish{ID: 7, Name: "odd", Price: 3.333}, 2)
	assert.InDelta(t, 6.666, c.Total(), 1e-9)
	assert.InDelta(t, 6.67, c.DisplayTotal(), 1e-9)
}

// Walks the add/add/decrement/decrement scenario end to end.
func TestCartLifecycle(t *testing.T) {
	c := New()

	c.AddOrIncrement(dishA, 1)
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
	assert.InDelta(t, 10.00, c.DisplayTotal(), 1e-9)

	c.AddOrIncrement(dishA, 1)
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
	assert.InDelta(t, 20.00, c.DisplayTotal(), 1e-9)

	assert.NoError(t, c.Decrement(dishA.ID))
	assert.Equal(t, 1, c.Lines()[0].Quantity)
	assert.InDelta(t, 10.00, c.DisplayTotal(), 1e-9)

	assert.NoError(t, c.Decrement(dishA.ID))
	assert.True(t, c.Empty())
	assert.InDelta(t, 0.00, c.DisplayTotal(), 1e-9)
}

func TestFromLines_DropsNonPositiveQuantities(t *testing.T) {
	c := FromLines([]domain.CartLine{
		{DishID: 1, DishName: "a", Price: 1, Quantity: 2},
		{DishID: 2, DishName: "b", Price: 1, Quantity: 0},
		{DishID: 3, DishName: "c", Price: 1, Quantity: -1},
	})
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].DishID)
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	c.AddOrIncrement(dishA, 1)
	lines := c.Lines()
	lines[0].Quantity = 100
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestOrderItems(t *testing.T) {
	c := New()
	c.AddOrIncrement(dishA, 2)
	items := c.OrderItems()
	assert.Len(t, items, 1)
	assert.Equal(t, domain.OrderItem{DishName: dishA.Name, Price: dishA.Price, Quantity: 2}, items[0])
}
