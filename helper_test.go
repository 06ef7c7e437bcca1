package wishlist

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// lens returns a valid wish used as a base fixture across tests.
func lens() Wish {
	return Wish{
		Title:      "Lens",
		Price:      USD(499.99),
		TargetDate: MustParseDate("2025-12-01"),
		Category:   "Electronics",
	}
}
