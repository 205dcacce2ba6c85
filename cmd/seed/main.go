package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/config"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
)

// Seeds the database with a starter catalogue so a fresh shop install has
// suppliers, stock, customers and a week of expenses to work with.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	suppliers := repository.SupplierRepository{DB: pg}
	products := repository.ProductRepository{DB: pg}
	customers := repository.CustomerRepository{DB: pg}
	expenses := repository.ExpenseRepository{DB: pg}

	supplierIDs := make([]int64, 0, len(seedSuppliers))
	for _, s := range seedSuppliers {
		created, err := suppliers.Create(ctx, s)
		if err != nil {
			logger.Error("failed to seed supplier", "name", s.Name, "err", err)
			os.Exit(1)
		}
		supplierIDs = append(supplierIDs, created.ID)
	}

	for _, p := range seedProducts {
		product := p.product
		if p.supplier > 0 && p.supplier <= len(supplierIDs) {
			id := supplierIDs[p.supplier-1]
			product.SupplierID = &id
		}
		if _, err := products.Create(ctx, product); err != nil {
			logger.Error("failed to seed product", "name", product.Name, "err", err)
			os.Exit(1)
		}
	}

	for _, c := range seedCustomers {
		if _, err := customers.Create(ctx, c); err != nil {
			logger.Error("failed to seed customer", "name", c.Name, "err", err)
			os.Exit(1)
		}
	}

	today := time.Now()
	for _, e := range seedExpenses {
		in := repository.CreateExpenseInput{
			Date:        today.AddDate(0, 0, -e.daysAgo),
			Category:    e.category,
			Description: e.description,
			Amount:      e.amount,
		}
		if _, err := expenses.Create(ctx, in); err != nil {
			logger.Error("failed to seed expense", "description", e.description, "err", err)
			os.Exit(1)
		}
	}

	logger.Info("sample data seeded",
		"suppliers", len(seedSuppliers),
		"products", len(seedProducts),
		"customers", len(seedCustomers),
		"expenses", len(seedExpenses),
	)
}

var seedSuppliers = []domain.Supplier{
	{
		Name:             "Beauty Supplies Kenya",
		Contact:          "John Mwangi",
		Email:            "john@beautysupplies.co.ke",
		Address:          "Mombasa Road, Nairobi",
		ProductsSupplied: "Lotions, Creams, Hair Products",
		DeliveryTime:     "3-5 days",
		CreditTerms:      "Net 30",
	},
	{
		Name:             "Cosmetic Hub Africa",
		Contact:          "Sarah Ochieng",
		Email:            "sarah@cosmetichub.co.ke",
		Address:          "Westlands, Nairobi",
		ProductsSupplied: "Makeup, Skincare",
		DeliveryTime:     "2-3 days",
		CreditTerms:      "Net 15",
	},
	{
		Name:             "Hair Care Direct",
		Contact:          "Peter Oduya",
		Email:            "peter@haircare.co.ke",
		Address:          "Kasarani, Nairobi",
		ProductsSupplied: "Hair Products, Shampoos",
		DeliveryTime:     "1-2 days",
		CreditTerms:      "Cash on Delivery",
	},
	{
		Name:             "Baby Care Distributors",
		Contact:          "Mary Akinyi",
		Email:            "mary@babycare.co.ke",
		Address:          "Industrial Area, Nairobi",
		ProductsSupplied: "Baby Products, Diapers",
		DeliveryTime:     "2-4 days",
		CreditTerms:      "Net 30",
	},
}

type seedProduct struct {
	product  domain.Product
	supplier int // 1-based index into seedSuppliers
}

var seedProducts = []seedProduct{
	// Skincare
	{domain.Product{Name: "Moisturizing Lotion", Brand: "Nivea", Category: "skincare", BuyingPrice: 250, SellingPrice: 450, Quantity: 50, ReorderLevel: 15}, 1},
	{domain.Product{Name: "Sunscreen SPF 50", Brand: "L'Oréal", Category: "skincare", BuyingPrice: 800, SellingPrice: 1200, Quantity: 30, ReorderLevel: 10}, 2},
	{domain.Product{Name: "Face Wash", Brand: "CeraVe", Category: "skincare", BuyingPrice: 600, SellingPrice: 950, Quantity: 40, ReorderLevel: 12}, 2},
	{domain.Product{Name: "Night Cream", Brand: "Olay", Category: "skincare", BuyingPrice: 900, SellingPrice: 1400, Quantity: 25, ReorderLevel: 8}, 2},
	{domain.Product{Name: "Body Lotion", Brand: "Vaseline", Category: "skincare", BuyingPrice: 180, SellingPrice: 350, Quantity: 60, ReorderLevel: 20}, 1},
	{domain.Product{Name: "Lip Balm", Brand: "Carmol", Category: "skincare", BuyingPrice: 80, SellingPrice: 150, Quantity: 100, ReorderLevel: 30}, 1},
	{domain.Product{Name: "Face Serum", Brand: "The Ordinary", Category: "skincare", BuyingPrice: 1200, SellingPrice: 1800, Quantity: 20, ReorderLevel: 5}, 2},

	// Makeup
	{domain.Product{Name: "Lipstick", Brand: "Maybelline", Category: "makeup", BuyingPrice: 350, SellingPrice: 600, Quantity: 45, ReorderLevel: 15}, 2},
	{domain.Product{Name: "Foundation", Brand: "Fenty Beauty", Category: "makeup", BuyingPrice: 1800, SellingPrice: 2800, Quantity: 15, ReorderLevel: 5}, 2},
	{domain.Product{Name: "Mascara", Brand: "L'Oréal", Category: "makeup", BuyingPrice: 450, SellingPrice: 750, Quantity: 35, ReorderLevel: 10}, 2},
	{domain.Product{Name: "Eyeliner", Brand: "Essence", Category: "makeup", BuyingPrice: 200, SellingPrice: 400, Quantity: 50, ReorderLevel: 15}, 2},
	{domain.Product{Name: "Blush", Brand: "NYX", Category: "makeup", BuyingPrice: 400, SellingPrice: 700, Quantity: 30, ReorderLevel: 10}, 2},
	{domain.Product{Name: "Concealer", Brand: "Maybelline", Category: "makeup", BuyingPrice: 500, SellingPrice: 850, Quantity: 25, ReorderLevel: 8}, 2},
	{domain.Product{Name: "Nail Polish", Brand: "Essie", Category: "makeup", BuyingPrice: 300, SellingPrice: 550, Quantity: 40, ReorderLevel: 12}, 2},

	// Hair care
	{domain.Product{Name: "Shampoo", Brand: "Head & Shoulders", Category: "hair", BuyingPrice: 250, SellingPrice: 450, Quantity: 80, ReorderLevel: 25}, 3},
	{domain.Product{Name: "Hair Conditioner", Brand: "Pantene", Category: "hair", BuyingPrice: 280, SellingPrice: 480, Quantity: 60, ReorderLevel: 20}, 3},
	{domain.Product{Name: "Hair Oil", Brand: "Murray's", Category: "hair", BuyingPrice: 180, SellingPrice: 350, Quantity: 70, ReorderLevel: 20}, 3},
	{domain.Product{Name: "Hair Serum", Brand: "Argan", Category: "hair", BuyingPrice: 450, SellingPrice: 750, Quantity: 40, ReorderLevel: 12}, 3},
	{domain.Product{Name: "Hair Spray", Brand: "VO5", Category: "hair", BuyingPrice: 200, SellingPrice: 380, Quantity: 50, ReorderLevel: 15}, 3},
	{domain.Product{Name: "Hair Gel", Brand: "Ampro", Category: "hair", BuyingPrice: 120, SellingPrice: 250, Quantity: 65, ReorderLevel: 20}, 3},

	// Baby care
	{domain.Product{Name: "Baby Lotion", Brand: "Johnson's", Category: "baby", BuyingPrice: 200, SellingPrice: 380, Quantity: 50, ReorderLevel: 15}, 4},
	{domain.Product{Name: "Baby Shampoo", Brand: "Gentle Baby", Category: "baby", BuyingPrice: 180, SellingPrice: 350, Quantity: 55, ReorderLevel: 18}, 4},
	{domain.Product{Name: "Baby Powder", Brand: "Fever", Category: "baby", BuyingPrice: 150, SellingPrice: 300, Quantity: 60, ReorderLevel: 20}, 4},
	{domain.Product{Name: "Diapers Size Small", Brand: "Pampers", Category: "baby", BuyingPrice: 800, SellingPrice: 1200, Quantity: 25, ReorderLevel: 10}, 4},
	{domain.Product{Name: "Diapers Size Medium", Brand: "Pampers", Category: "baby", BuyingPrice: 900, SellingPrice: 1350, Quantity: 30, ReorderLevel: 10}, 4},
	{domain.Product{Name: "Baby Wipes", Brand: "WaterWipes", Category: "baby", BuyingPrice: 350, SellingPrice: 550, Quantity: 45, ReorderLevel: 15}, 4},
	{domain.Product{Name: "Baby Oil", Brand: "Johnson's", Category: "baby", BuyingPrice: 220, SellingPrice: 400, Quantity: 40, ReorderLevel: 12}, 4},
}

var seedCustomers = []domain.Customer{
	{Name: "Grace Atieno", Phone: "0712345678", Email: "grace@gmail.com", SkinType: "dry", HairType: "normal", ProductsBought: "Moisturizing Lotion, Lipstick", Notes: "Prefers natural products"},
	{Name: "Faith Wanjiku", Phone: "0723456789", Email: "faith@yahoo.com", SkinType: "oily", HairType: "dry", ProductsBought: "Face Wash, Hair Oil", Notes: "Buys often"},
	{Name: "Joyce Akinyi", Phone: "0734567890", Email: "joyce@gmail.com", SkinType: "combination", HairType: "normal", ProductsBought: "Shampoo, Foundation"},
	{Name: "Mary Nyong'o", Phone: "0745678901", Email: "mary@email.com", SkinType: "sensitive", HairType: "dry", ProductsBought: "Hypoallergenic products", Notes: "Allergic to fragrances"},
	{Name: "Sarah Kemunto", Phone: "0756789012", Email: "sarah@gmail.com", SkinType: "normal", HairType: "oily", ProductsBought: "Hair Spray, Blush"},
}

var seedExpenses = []struct {
	daysAgo     int
	category    string
	description string
	amount      int64
}{
	{1, "rent", "Monthly Shop Rent", 25000},
	{2, "transport", "Transport for stock pickup", 2500},
	{3, "utilities", "Electricity Bill", 4500},
	{5, "stock_purchase", "Stock from Beauty Supplies", 35000},
	{7, "other", "Shop Maintenance", 3000},
}
