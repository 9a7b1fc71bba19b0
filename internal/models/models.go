package models

// Product is one sellable item in the catalog. Code is the lookup key
// and is immutable once set; Name must also be unique across the
// catalog.
type Product struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	GramsUsed float64 `json:"grams_used"`
	SalePrice float64 `json:"sale_price"`
}

// FilamentCost is a per-color material cost entry.
type FilamentCost struct {
	Color       string  `json:"color"`
	CostPerGram float64 `json:"cost_per_gram"`
}

// Order is one row in the order ledger. ProductName, Cost and Profit
// are snapshots taken from the catalog and cost table when the order
// is created; they are never re-derived on later edits.
type Order struct {
	CustomerName  string  `json:"customer_name"`
	ProductCode   string  `json:"product_code"`
	ProductName   string  `json:"product_name"`
	FilamentColor string  `json:"filament_color"`
	OrderDate     string  `json:"order_date"`
	DeliveryDate  string  `json:"delivery_date"`
	AssignedTo    string  `json:"assigned_to"`
	Cost          float64 `json:"cost"`
	Profit        float64 `json:"profit"`
	IsPrinted     bool    `json:"is_printed"`
	IsDelivered   bool    `json:"is_delivered"`
	Message       string  `json:"message"`
}

// OrderInput carries the caller-supplied fields for creating or
// editing an order. The derived and snapshot fields are filled in by
// the ledger itself.
type OrderInput struct {
	CustomerName  string `json:"customer_name"`
	ProductCode   string `json:"product_code"`
	FilamentColor string `json:"filament_color"`
	OrderDate     string `json:"order_date"`
	DeliveryDate  string `json:"delivery_date"`
	AssignedTo    string `json:"assigned_to"`
	IsPrinted     bool   `json:"is_printed"`
	IsDelivered   bool   `json:"is_delivered"`
	Message       string `json:"message"`
}

// IndexedOrder pairs an order with its row position in the ledger.
// Orders have no other identity; edits target the position.
type IndexedOrder struct {
	Index int   `json:"index"`
	Order Order `json:"order"`
}
