package crm

import (
	"fmt"
	"strings"
)

// Recommendation is a complementary product suggestion.
type Recommendation struct {
	Product     string `json:"product"`
	Description string `json:"description"`
}

type recommendationEntry struct {
	keyword        string
	recommendation Recommendation
}

// recommendationTable maps product keywords to suggestions. Order matters:
// the first entry whose keyword matches wins, so broader keywords belong
// later.
var recommendationTable = []recommendationEntry{
	{"cosmetic", Recommendation{"Skincare Kit", "Customers buying cosmetics often add a skincare kit for a complete routine."}},
	{"electronics", Recommendation{"Extended Warranty", "An extended warranty protects electronics purchases beyond the standard cover."}},
	{"groceries", Recommendation{"Grocery Subscription", "A monthly grocery subscription saves repeat buyers time and money."}},
	{"clothing", Recommendation{"Fashion Accessories", "Accessories pair well with clothing purchases and lift the basket value."}},
	{"sports", Recommendation{"Fitness Tracker", "A fitness tracker complements sports gear for customers tracking progress."}},
	{"furniture", Recommendation{"Furniture Care Kit", "A care kit keeps new furniture in shape and extends its life."}},
	{"books", Recommendation{"Reading Light", "A clip-on reading light is a popular add-on for book buyers."}},
	{"toys", Recommendation{"Battery Pack", "Most toys need batteries; a rechargeable pack avoids the obvious frustration."}},
	{"kitchen", Recommendation{"Cookware Set", "Kitchenware buyers often upgrade to a matching cookware set."}},
	{"home", Recommendation{"Smart Plug", "A smart plug is an easy add-on for home essentials shoppers."}},
}

// Recommend returns the complementary product for a purchased product string.
// Matching is a case-insensitive substring test against the table in declared
// order; no match falls back to a gift voucher.
func Recommend(product string) Recommendation {
	lower := strings.ToLower(product)
	for _, entry := range recommendationTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.recommendation
		}
	}
	return Recommendation{
		Product:     "Gift Voucher",
		Description: fmt.Sprintf("A gift voucher could be a nice add-on for %s buyers.", product),
	}
}
