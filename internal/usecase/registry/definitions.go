package registry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpersona/seedgen/internal/domain"
)

// Shipped persona definitions. Account references are indexes into the
// persona's account slice; ids are fixed so reseeding the same persona is
// idempotent against an already-seeded target.

func onDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bikeshStudent() *domain.Persona {
	return &domain.Persona{
		Name: "BIKESH_KTM_STUDENT",
		Identity: domain.Identity{
			ID:       uuid.MustParse("a1b2c3d4-e5f6-7788-9900-aabbccddeeff"),
			Email:    "bikesh.maharjan@student.example.com",
			FullName: "Bikesh Maharjan",
		},
		Accounts: []domain.Account{
			{
				ID:             uuid.MustParse("b2a1c3d4-e5f6-7788-9900-aabbccddeeff"),
				BankName:       "Nabil Bank",
				NumberMasked:   "**** 1234",
				AccountType:    "Student Savings (Allowance)",
				OpeningBalance: decimal.NewFromInt(15000),
			},
			{
				ID:             uuid.MustParse("c3d4e5f6-a1b2-7788-9900-aabbccddeeff"),
				BankName:       "eSewa Bank",
				NumberMasked:   "**** 5678",
				AccountType:    "Freelancer (Gig Money)",
				OpeningBalance: decimal.NewFromInt(10000),
			},
		},
		StockHoldings: []domain.StockHolding{
			{Symbol: "AAPL", Name: "Apple Inc.", Quantity: domain.Price("2.750000"), AverageBuyPrice: domain.Price("205.50"), CurrentPrice: domain.Price("228.90"), Currency: "USD"},
			{Symbol: "MSFT", Name: "Microsoft Corporation", Quantity: domain.Price("1.400000"), AverageBuyPrice: domain.Price("390.20"), CurrentPrice: domain.Price("436.10"), Currency: "USD"},
			{Symbol: "NVDA", Name: "NVIDIA Corporation", Quantity: domain.Price("0.850000"), AverageBuyPrice: domain.Price("810.00"), CurrentPrice: domain.Price("965.20"), Currency: "USD"},
		},
		IncomeRules: []domain.IncomeRule{
			{DayOfMonth: 1, AccountRef: 0, Merchant: "Family", Description: "Monthly Allowance", Amount: domain.Amount(15000)},
			{DayOfMonth: 10, AccountRef: 1, Merchant: "Freelance Client", Description: "Graphic Design Gig", Amount: domain.AmountBetween(5000, 10000)},
		},
		DailyRules: []domain.DailyRule{
			{Probability: 0.95, AccountRef: 0, Category: "Food", Merchant: "College Canteen", Description: "Daily Khaja", Amount: domain.AmountBetween(180, 250)},
			{Probability: 0.9, AccountRef: 0, Category: "Transport", Merchant: "Ride-Hailing", Description: "Pathao to College", Amount: domain.AmountBetween(90, 130)},
			{Probability: 0.9, AccountRef: 0, Category: "Transport", Merchant: "Ride-Hailing", Description: "inDrive Home", Amount: domain.AmountBetween(80, 120)},
		},
		OccasionalRules: []domain.OccasionalRule{
			{Probability: 0.1, AccountRef: 1, Category: "Food", Merchant: "Local Cafe", Description: "Coffee with Friends", Amount: domain.AmountBetween(300, 700)},
			{Probability: 0.06, AccountRef: 1, Category: "Entertainment", Merchant: "Restaurant", Description: "Weekend Dinner", Amount: domain.AmountBetween(1000, 2500)},
			{Probability: 0.03, AccountRef: 1, Category: "Entertainment", Merchant: "QFX Cinemas", Description: "Movie Ticket", Amount: domain.AmountBetween(500, 700)},
			{Probability: 0.03, AccountRef: 1, Category: "Shopping", Merchant: "Daraz/Bhatbhateni", Description: "Clothes Shopping", Amount: domain.AmountBetween(2000, 5000)},
			{Probability: 0.1, AccountRef: 0, Category: "Utilities", Merchant: "Ncell/NTC", Description: "Mobile Top-up", Amount: domain.AmountBetween(200, 500)},
		},
		RareDateRules: []domain.RareDateRule{
			{Date: onDate(2025, time.April, 10), AccountRef: 0, Category: "Maintenance", Merchant: "Laptop Repair", Description: "Laptop Service/Repair", Amount: domain.AmountBetween(3000, 5000), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.June, 15), AccountRef: 1, Category: "Travel", Merchant: "Pokhara Trip", Description: "Bus & Hotel (Trip)", Amount: domain.AmountBetween(10000, 15000), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.October, 25), AccountRef: 1, Category: "Shopping", Merchant: "Electronics Store", Description: "New Headphones (Want)", Amount: domain.Amount(8000), Direction: domain.DirectionDebit},
		},
	}
}

func rohanSoftwareDev() *domain.Persona {
	return &domain.Persona{
		Name: "ROHAN_SOFTWARE_DEV",
		Identity: domain.Identity{
			ID:       uuid.MustParse("e4a5b6c7-d8e9-40a1-a2c3-d4e5f6a7b8c9"),
			Email:    "rohan.pradhan@techcompany.com",
			FullName: "Rohan Pradhan",
		},
		Accounts: []domain.Account{
			{
				ID:             uuid.MustParse("f1a2b3c4-d5e6-47f8-89a0-b1c2d3e4f5a6"),
				BankName:       "NIC Asia Bank",
				NumberMasked:   "**** 9876",
				AccountType:    "Salary Account",
				OpeningBalance: decimal.NewFromInt(75000),
			},
			{
				ID:             uuid.MustParse("a1b2c3d4-e5f6-47a8-b9c0-d1e2f3a4b5c6"),
				BankName:       "Khalti",
				NumberMasked:   "98********",
				AccountType:    "Digital Wallet",
				OpeningBalance: decimal.NewFromInt(5000),
			},
		},
		StockHoldings: []domain.StockHolding{
			{Symbol: "AAPL", Name: "Apple Inc.", Quantity: domain.Price("5.000000"), AverageBuyPrice: domain.Price("198.00"), CurrentPrice: domain.Price("228.90"), Currency: "USD"},
			{Symbol: "GOOGL", Name: "Alphabet Inc. Class A", Quantity: domain.Price("4.500000"), AverageBuyPrice: domain.Price("170.40"), CurrentPrice: domain.Price("186.75"), Currency: "USD"},
			{Symbol: "AMZN", Name: "Amazon.com, Inc.", Quantity: domain.Price("7.200000"), AverageBuyPrice: domain.Price("177.90"), CurrentPrice: domain.Price("204.35"), Currency: "USD"},
			{Symbol: "MSFT", Name: "Microsoft Corporation", Quantity: domain.Price("2.800000"), AverageBuyPrice: domain.Price("401.80"), CurrentPrice: domain.Price("436.10"), Currency: "USD"},
		},
		IncomeRules: []domain.IncomeRule{
			{DayOfMonth: 28, AccountRef: 0, Merchant: "TechCompany Inc.", Description: "Monthly Salary", Amount: domain.Amount(60000)},
		},
		DailyRules: []domain.DailyRule{
			{Probability: 0.95, AccountRef: 0, Category: "Food", Merchant: "Office Canteen", Description: "Office Lunch", Amount: domain.AmountBetween(400, 600)},
			{Probability: 0.7, AccountRef: 1, Category: "Food", Merchant: "Local Cafe", Description: "Evening Snacks/Coffee", Amount: domain.AmountBetween(300, 500)},
		},
		MonthlyRules: []domain.MonthlyRule{
			{DayOfMonth: 1, AccountRef: 0, Category: "Rent", Merchant: "Landlord", Description: "Monthly Rent", Amount: domain.Amount(20000)},
			{DayOfMonth: 2, AccountRef: 0, Category: "Groceries", Merchant: "Bhatbhateni", Description: "Monthly Groceries", Amount: domain.AmountBetween(3000, 4000)},
			{DayOfMonth: 10, AccountRef: 0, Category: "Utilities", Merchant: "Worldlink", Description: "Internet Bill", Amount: domain.Amount(1500)},
			{DayOfMonth: 12, AccountRef: 0, Category: "Utilities", Merchant: "NEA", Description: "Electricity Bill", Amount: domain.AmountBetween(500, 1000)},
		},
		OccasionalRules: []domain.OccasionalRule{
			{Probability: 0.15, AccountRef: 0, Category: "Transport", Merchant: "Petrol Pump", Description: "Bike Petrol", Amount: domain.AmountBetween(480, 520)},
			{Probability: 0.1, AccountRef: 0, Category: "Food", Merchant: "Restaurant", Description: "Dinner with Colleagues", Amount: domain.AmountBetween(1500, 3000)},
			{Probability: 0.06, AccountRef: 0, Category: "Entertainment", Merchant: "QFX Cinemas", Description: "Movie Ticket", Amount: domain.AmountBetween(500, 700)},
			{Probability: 0.03, AccountRef: 0, Category: "Shopping", Merchant: "Daraz/Zara", Description: "Clothes Shopping", Amount: domain.AmountBetween(3000, 8000)},
		},
		RareDateRules: []domain.RareDateRule{
			{Date: onDate(2025, time.January, 15), AccountRef: 0, Category: "Maintenance", Merchant: "Bike Workshop", Description: "Bike Servicing", Amount: domain.Amount(6500), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.April, 15), AccountRef: 0, Category: "Maintenance", Merchant: "Bike Workshop", Description: "Bike Servicing", Amount: domain.Amount(6500), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.July, 15), AccountRef: 0, Category: "Maintenance", Merchant: "Bike Workshop", Description: "Bike Servicing", Amount: domain.Amount(6500), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.October, 15), AccountRef: 0, Category: "Maintenance", Merchant: "Bike Workshop", Description: "Bike Servicing", Amount: domain.Amount(6500), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.March, 20), AccountRef: 0, Category: "Travel", Merchant: "Travel Agency", Description: "Trip with Friends (Chitlang)", Amount: domain.AmountBetween(8000, 12000), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.September, 10), AccountRef: 0, Category: "Travel", Merchant: "Travel Agency", Description: "Trip with Friends (Mustang)", Amount: domain.AmountBetween(25000, 40000), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.October, 20), AccountRef: 0, Category: "Income", Merchant: "TechCompany Inc.", Description: "Dashain Bonus (5%)", Amount: domain.Amount(3000), Direction: domain.DirectionCredit},
		},
	}
}

func priyaBankManager() *domain.Persona {
	return &domain.Persona{
		Name: "PRIYA_BANK_MANAGER",
		Identity: domain.Identity{
			ID:       uuid.MustParse("d1e2f3a4-b5c6-47d8-a9b0-c1d2e3f4a5b6"),
			Email:    "priya.shrestha@bank.com",
			FullName: "Priya Shrestha",
		},
		Accounts: []domain.Account{
			{
				ID:             uuid.MustParse("a1b2c3d4-e5f6-47a8-b9c0-d1e2f3a4b5c7"),
				BankName:       "NMB Bank",
				NumberMasked:   "**** 1122",
				AccountType:    "Salary Account",
				OpeningBalance: decimal.NewFromInt(80000),
			},
			{
				ID:             uuid.MustParse("b2c3d4e5-f6a7-4b8c-9d0e-f1a2b3c4d5e6"),
				BankName:       "eSewa",
				NumberMasked:   "98********",
				AccountType:    "Digital Wallet",
				OpeningBalance: decimal.NewFromInt(10000),
			},
		},
		StockHoldings: []domain.StockHolding{
			{Symbol: "TSLA", Name: "Tesla, Inc.", Quantity: domain.Price("3.200000"), AverageBuyPrice: domain.Price("215.00"), CurrentPrice: domain.Price("242.40"), Currency: "USD"},
			{Symbol: "AAPL", Name: "Apple Inc.", Quantity: domain.Price("4.100000"), AverageBuyPrice: domain.Price("201.25"), CurrentPrice: domain.Price("228.90"), Currency: "USD"},
			{Symbol: "NVDA", Name: "NVIDIA Corporation", Quantity: domain.Price("1.100000"), AverageBuyPrice: domain.Price("845.00"), CurrentPrice: domain.Price("965.20"), Currency: "USD"},
			{Symbol: "AMZN", Name: "Amazon.com, Inc.", Quantity: domain.Price("3.700000"), AverageBuyPrice: domain.Price("182.00"), CurrentPrice: domain.Price("204.35"), Currency: "USD"},
		},
		IncomeRules: []domain.IncomeRule{
			{DayOfMonth: 28, AccountRef: 0, Merchant: "NMB Bank", Description: "Monthly Salary", Amount: domain.Amount(70000)},
		},
		DailyRules: []domain.DailyRule{
			{Probability: 0.95, AccountRef: 0, Category: "Food", Merchant: "Work Canteen", Description: "Work Lunch", Amount: domain.AmountBetween(400, 600)},
			{Probability: 0.7, AccountRef: 1, Category: "Food", Merchant: "Local Cafe", Description: "Evening Snacks/Coffee", Amount: domain.AmountBetween(300, 500)},
			{Probability: 0.95, AccountRef: 1, Category: "Transport", Merchant: "Ride-Hailing", Description: "Pathao to Office", Amount: domain.AmountBetween(65, 80)},
			{Probability: 0.95, AccountRef: 1, Category: "Transport", Merchant: "Ride-Hailing", Description: "inDrive Home", Amount: domain.AmountBetween(65, 80)},
			{Probability: 0.5, AccountRef: 1, Category: "Shopping", Merchant: "Skincare/Makeup", Description: "Skincare/Makeup Purchase", Amount: domain.AmountBetween(1000, 3000)},
		},
		MonthlyRules: []domain.MonthlyRule{
			{DayOfMonth: 2, AccountRef: 0, Category: "Groceries", Merchant: "Bhatbhateni", Description: "Monthly Groceries", Amount: domain.AmountBetween(5000, 7000)},
			{DayOfMonth: 10, AccountRef: 0, Category: "Utilities", Merchant: "Worldlink", Description: "Internet Bill", Amount: domain.Amount(1500)},
			{DayOfMonth: 12, AccountRef: 0, Category: "Utilities", Merchant: "NEA", Description: "Electricity Bill", Amount: domain.AmountBetween(1000, 1500)},
		},
		OccasionalRules: []domain.OccasionalRule{
			{Probability: 0.1, AccountRef: 0, Category: "Food", Merchant: "Restaurant", Description: "Dinner/Outing", Amount: domain.AmountBetween(2000, 4000)},
			{Probability: 0.06, AccountRef: 0, Category: "Shopping", Merchant: "Zara/Mango", Description: "Clothes Shopping", Amount: domain.AmountBetween(5000, 10000)},
		},
		RareDateRules: []domain.RareDateRule{
			{Date: onDate(2025, time.March, 1), AccountRef: 0, Category: "Travel", Merchant: "Travel Agency", Description: "Trip to Pokhara", Amount: domain.AmountBetween(15000, 20000), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.September, 5), AccountRef: 0, Category: "Travel", Merchant: "Vistara", Description: "Trip to Delhi", Amount: domain.AmountBetween(30000, 40000), Direction: domain.DirectionDebit},
			{Date: onDate(2025, time.October, 20), AccountRef: 0, Category: "Income", Merchant: "NMB Bank", Description: "Dashain Bonus (8%)", Amount: domain.Amount(5600), Direction: domain.DirectionCredit},
		},
	}
}
