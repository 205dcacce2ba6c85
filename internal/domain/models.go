package domain

import "time"

// Payment methods accepted at the counter.
const (
	PaymentCash  PaymentMethod = "cash"
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCard  PaymentMethod = "card"
)

type PaymentMethod string

type Supplier struct {
	ID               int64
	Name             string
	Contact          string
	Email            string
	Address          string
	ProductsSupplied string
	DeliveryTime     string
	CreditTerms      string
	LastPriceList    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type Product struct {
	ID           int64
	Name         string
	Brand        string
	Category     string
	BuyingPrice  int64
	SellingPrice int64
	Quantity     int
	ReorderLevel int
	SupplierID   *int64
	ExpiryDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// SaleAmounts returns the total and per-sale profit for selling qty units at
// the current prices. Both are snapshotted onto the Sale at record time so
// later price edits never rewrite history.
func (p Product) SaleAmounts(qty int) (total, profit int64) {
	total = p.SellingPrice * int64(qty)
	profit = (p.SellingPrice - p.BuyingPrice) * int64(qty)
	return total, profit
}

type Customer struct {
	ID             int64
	Name           string
	Phone          string
	Email          string
	SkinType       string
	HairType       string
	ProductsBought string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type Sale struct {
	ID            int64
	ProductID     int64
	ProductName   string
	CustomerID    *int64
	Quantity      int
	UnitPrice     int64
	TotalAmount   int64
	Profit        int64
	PaymentMethod PaymentMethod
	ReceiptNumber string
	SaleDate      time.Time
	CreatedAt     time.Time
}

type Expense struct {
	ID          int64
	Date        time.Time
	Category    string
	Description string
	Amount      int64
	CreatedAt   time.Time
	DeletedAt   *time.Time
}
