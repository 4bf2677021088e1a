package domain

import "time"

// Lot is one batch of produced panela with its own costs, price and
// lifecycle state. Rows are created by the production CRUD layer; the
// analytics code only reads them.
type Lot struct {
	ID             string    `json:"id" db:"id"`
	Code           string    `json:"code" db:"code"`
	Quantity       float64   `json:"quantity" db:"quantity"` // kg
	ProducedAt     time.Time `json:"produced_at" db:"produced_at"`
	CaneCost       float64   `json:"cane_cost" db:"cane_cost"`
	LaborCost      float64   `json:"labor_cost" db:"labor_cost"`
	EnergyCost     float64   `json:"energy_cost" db:"energy_cost"`
	PackagingCost  float64   `json:"packaging_cost" db:"packaging_cost"`
	TransportCost  float64   `json:"transport_cost" db:"transport_cost"`
	TotalCost      float64   `json:"total_cost" db:"total_cost"`
	ProfitMargin   float64   `json:"profit_margin" db:"profit_margin"`
	SuggestedPrice float64   `json:"suggested_price" db:"suggested_price"`
	Status         string    `json:"status" db:"status"`
	OperatorID     string    `json:"operator_id" db:"operator_id"`
	Description    *string   `json:"description,omitempty" db:"description"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Sale records panela sold out of a lot.
type Sale struct {
	ID        string    `json:"id" db:"id"`
	LotID     string    `json:"lot_id" db:"lot_id"`
	Quantity  float64   `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
	Total     float64   `json:"total" db:"total"`
	Customer  string    `json:"customer" db:"customer"`
	SoldAt    time.Time `json:"sold_at" db:"sold_at"`
}

// Supplier is a raw-cane provider.
type Supplier struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Contact   *string   `json:"contact,omitempty" db:"contact"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Address   *string   `json:"address,omitempty" db:"address"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Purchase records raw cane bought from a supplier.
type Purchase struct {
	ID          string    `json:"id" db:"id"`
	SupplierID  string    `json:"supplier_id" db:"supplier_id"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	UnitPrice   float64   `json:"unit_price" db:"unit_price"`
	Total       float64   `json:"total" db:"total"`
	PurchasedAt time.Time `json:"purchased_at" db:"purchased_at"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
}

// SupplyItem is a raw-material inventory item (bags, labels, boxes...).
type SupplyItem struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`
	Unit         string  `json:"unit" db:"unit"`
	MinimumStock float64 `json:"minimum_stock" db:"minimum_stock"`
	CurrentStock float64 `json:"current_stock" db:"current_stock"`
	UnitCost     float64 `json:"unit_cost" db:"unit_cost"`
	Active       bool    `json:"active" db:"active"`
}

// SupplyMovement is one IN/OUT adjustment of a supply item's stock.
type SupplyMovement struct {
	ID           string    `json:"id" db:"id"`
	SupplyItemID string    `json:"supply_item_id" db:"supply_item_id"`
	Direction    string    `json:"direction" db:"direction"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	Reason       *string   `json:"reason,omitempty" db:"reason"`
	MovedAt      time.Time `json:"moved_at" db:"moved_at"`
	UserID       string    `json:"user_id" db:"user_id"`
}

// User is an operator or administrator of the plant.
type User struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Role  string `json:"role" db:"role"`
}
