// Package seed holds the demo dataset served when the API runs without a
// reachable database, and loaded into PostgreSQL on first boot so a fresh
// install has something to chart.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
)

// DemoEmail and DemoPassword are the credentials of the seeded account.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo1234"
)

var (
	customerAlice = uuid.MustParse("77f32bba-7731-4ce3-b143-109ba437e409")
	customerBob   = uuid.MustParse("25baef86-d8ac-4fb7-a62b-ab7c3c6d7ed2")
	customerCarol = uuid.MustParse("5b8a9af8-a3ce-4a08-92d7-6ef697deed35")

	productPremiumPlan = uuid.MustParse("72b69b0c-5472-417a-8cd2-d3271d44b485")
	productStarterPlan = uuid.MustParse("33c69d5a-0d80-4071-a42c-f601c392645c")
	productKeyboard    = uuid.MustParse("fa3fa60f-cb14-46f2-880c-c6fc3a730709")
	productDock        = uuid.MustParse("c22ae25f-ff6d-4ce7-b275-36ad915d3678")
	productWorkshop    = uuid.MustParse("d44b3c87-853b-48c9-a04c-68d786c6d2df")
)

func strPtr(s string) *string {
	return &s
}

// Users returns the demo account. The password is hashed at call time, so
// the hash differs between boots while the credentials stay fixed.
func Users() []entity.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; the constant cost is valid
		panic(err)
	}
	return []entity.User{
		{
			ID:       uuid.MustParse("a59f916e-d565-455c-8f0a-42a395259e1e"),
			Name:     "Demo User",
			Email:    DemoEmail,
			Password: string(hashed),
			Role:     "admin",
			IsActive: true,
		},
	}
}

// Customers returns the demo customers
func Customers() []entity.Customer {
	return []entity.Customer{
		{
			ID:      customerAlice,
			Name:    "Alice Johnson",
			Email:   "alice@example.com",
			Phone:   strPtr("+254 700 111 222"),
			Company: strPtr("Wayfarer Labs"),
			Status:  enum.CustomerStatusActive,
		},
		{
			ID:     customerBob,
			Name:   "Bob Stone",
			Email:  "bob@example.com",
			Status: enum.CustomerStatusLead,
			Notes:  strPtr("Met at the November trade fair, interested in hardware bundles"),
		},
		{
			ID:      customerCarol,
			Name:    "Carol Mwangi",
			Email:   "carol@example.com",
			Company: strPtr("Savanna Media"),
			Status:  enum.CustomerStatusActive,
		},
	}
}

// Products returns the demo catalog
func Products() []entity.Product {
	return []entity.Product{
		{
			ID:          productPremiumPlan,
			Name:        "Premium Plan",
			Description: strPtr("Annual premium subscription"),
			Price:       9900,
			Category:    "subscriptions",
			InStock:     true,
		},
		{
			ID:       productStarterPlan,
			Name:     "Starter Plan",
			Price:    2900,
			Category: "subscriptions",
			InStock:  true,
		},
		{
			ID:          productKeyboard,
			Name:        "Mechanical Keyboard",
			Description: strPtr("Tenkeyless, hot-swappable switches"),
			Price:       12000,
			Category:    "hardware",
			InStock:     true,
		},
		{
			ID:       productDock,
			Name:     "USB-C Dock",
			Price:    8550,
			Category: "hardware",
			InStock:  false,
		},
		{
			ID:          productWorkshop,
			Name:        "Onboarding Workshop",
			Description: strPtr("Half-day remote onboarding session"),
			Price:       25000,
			Category:    "services",
			InStock:     true,
		},
	}
}

// Orders returns the demo orders. Line items carry the category copied from
// the product row above, the same shape order creation produces.
func Orders() []entity.Order {
	o1 := uuid.MustParse("d3d2492b-5cf6-4806-8d56-1e341521bf02")
	o2 := uuid.MustParse("06425baa-6b1e-4572-9543-493e92bffb25")
	o3 := uuid.MustParse("a62761b6-11f7-45da-843c-808c7d3be344")
	o4 := uuid.MustParse("dbaf552f-085e-4d9e-b35a-1ee948a4826e")
	o5 := uuid.MustParse("1448d16d-1894-4bc7-8a4c-5e80ddb85406")
	o6 := uuid.MustParse("000c0aa7-9c84-4b90-8adb-4b8591ac3a44")

	return []entity.Order{
		{
			ID:           o1,
			CustomerID:   customerAlice,
			CustomerName: "Alice Johnson",
			Status:       enum.OrderStatusPaid,
			OrderDate:    time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC),
			Total:        19800,
			Items: []entity.OrderItem{
				{
					ID:          uuid.MustParse("4a23d7e0-1731-41d8-b6dd-780d4f1d5f4f"),
					OrderID:     o1,
					ProductID:   productPremiumPlan,
					ProductName: "Premium Plan",
					Category:    "subscriptions",
					Quantity:    2,
					Price:       9900,
				},
			},
		},
		{
			ID:           o2,
			CustomerID:   customerBob,
			CustomerName: "Bob Stone",
			Status:       enum.OrderStatusShipped,
			OrderDate:    time.Date(2025, 11, 1, 15, 5, 0, 0, time.UTC),
			Total:        12000,
			Items: []entity.OrderItem{
				{
					ID:          uuid.MustParse("c0087cb2-e7a0-48ce-aad8-9ee4ea74295b"),
					OrderID:     o2,
					ProductID:   productKeyboard,
					ProductName: "Mechanical Keyboard",
					Category:    "hardware",
					Quantity:    1,
					Price:       12000,
				},
			},
		},
		{
			ID:           o3,
			CustomerID:   customerCarol,
			CustomerName: "Carol Mwangi",
			Status:       enum.OrderStatusPaid,
			OrderDate:    time.Date(2025, 11, 2, 11, 0, 0, 0, time.UTC),
			Total:        17250,
			Items: []entity.OrderItem{
				{
					ID:          uuid.MustParse("7c2eff41-ab77-4e26-b8d0-afbc2dbdc651"),
					OrderID:     o3,
					ProductID:   productStarterPlan,
					ProductName: "Starter Plan",
					Category:    "subscriptions",
					Quantity:    3,
					Price:       2900,
				},
				{
					ID:          uuid.MustParse("740d13ae-f619-449c-a330-99c0b2ae4bf8"),
					OrderID:     o3,
					ProductID:   productDock,
					ProductName: "USB-C Dock",
					Category:    "hardware",
					Quantity:    1,
					Price:       8550,
				},
			},
		},
		{
			ID:           o4,
			CustomerID:   customerAlice,
			CustomerName: "Alice Johnson",
			Status:       enum.OrderStatusPaid,
			OrderDate:    time.Date(2025, 11, 3, 8, 45, 0, 0, time.UTC),
			Total:        25000,
			Items: []entity.OrderItem{
				{
					ID:          uuid.MustParse("43afc537-94f7-4525-984f-f81249b7f249"),
					OrderID:     o4,
					ProductID:   productWorkshop,
					ProductName: "Onboarding Workshop",
					Category:    "services",
					Quantity:    1,
					Price:       25000,
				},
			},
		},
		{
			ID:           o5,
			CustomerID:   customerBob,
			CustomerName: "Bob Stone",
			Status:       enum.OrderStatusPending,
			OrderDate:    time.Date(2025, 11, 4, 17, 20, 0, 0, time.UTC),
			Total:        17100,
			Items: []entity.OrderItem{
				{
					ID:          uuid.MustParse("a937855f-86f2-4cdc-a4b2-70e18275f830"),
					OrderID:     o5,
					ProductID:   productDock,
					ProductName: "USB-C Dock",
					Category:    "hardware",
					Quantity:    2,
					Price:       8550,
				},
			},
		},
		{
			ID:           o6,
			CustomerID:   customerCarol,
			CustomerName: "Carol Mwangi",
			Status:       enum.OrderStatusPaid,
			OrderDate:    time.Date(2025, 11, 5, 13, 10, 0, 0, time.UTC),
			Total:        12800,
			Items: []entity.OrderItem{
				{
					ID:          uuid.MustParse("724425e9-ef93-4010-80aa-209685bed029"),
					OrderID:     o6,
					ProductID:   productPremiumPlan,
					ProductName: "Premium Plan",
					Category:    "subscriptions",
					Quantity:    1,
					Price:       9900,
				},
				{
					ID:          uuid.MustParse("cb87e0a9-668a-4101-96e8-e501996debff"),
					OrderID:     o6,
					ProductID:   productStarterPlan,
					ProductName: "Starter Plan",
					Category:    "subscriptions",
					Quantity:    1,
					Price:       2900,
				},
			},
		},
	}
}
