package domain

import "time"

// NoInstructions is the sentinel stored when a dish has no cooking
// instructions; edit forms treat it as empty.
const NoInstructions = "no instructions"

type Dish struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Price               float64   `json:"price"`
	Description         string    `json:"description"`
	CookingInstructions string    `json:"cooking_instructions,omitempty"`
	IsAvailable         bool      `json:"is_available"`
	Category            string    `json:"category,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// CartLine holds a name/price snapshot of the dish at the time it was
// added, so later dish edits do not affect a cart in progress.
type CartLine struct {
	DishID   int     `json:"dish_id"`
	DishName string  `json:"dish_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderItem struct {
	DishName string  `json:"dish_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID          int         `json:"id"`
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      Status      `json:"status"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
