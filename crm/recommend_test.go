package crm

import (
	"strings"
	"testing"
)

func TestRecommend_KnownProducts(t *testing.T) {
	testCases := []struct {
		product  string
		expected string
	}{
		{"Electronics", "Extended Warranty"},
		{"Cosmetic Care", "Skincare Kit"},
		{"Sports Gear", "Fitness Tracker"},
		{"Kitchenware", "Cookware Set"},
		{"BOOKS", "Reading Light"},
	}

	for _, tc := range testCases {
		t.Run(tc.product, func(t *testing.T) {
			rec := Recommend(tc.product)
			if rec.Product != tc.expected {
				t.Errorf("Expected '%s' for '%s', got '%s'", tc.expected, tc.product, rec.Product)
			}
			if rec.Description == "" {
				t.Error("Expected a non-empty description")
			}
		})
	}
}

func TestRecommend_FirstDeclaredKeywordWins(t *testing.T) {
	// Matches both "home" and "kitchen"; "kitchen" is declared earlier.
	rec := Recommend("Home Kitchen Combo")
	if rec.Product != "Cookware Set" {
		t.Errorf("Expected earlier-declared keyword to win, got '%s'", rec.Product)
	}
}

func TestRecommend_Fallback(t *testing.T) {
	rec := Recommend("Garden Hose")
	if rec.Product != "Gift Voucher" {
		t.Errorf("Expected fallback 'Gift Voucher', got '%s'", rec.Product)
	}
	if !strings.Contains(rec.Description, "Garden Hose") {
		t.Errorf("Fallback description should mention the product, got '%s'", rec.Description)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	first := Recommend("Clothing")
	for i := 0; i < 10; i++ {
		if got := Recommend("Clothing"); got != first {
			t.Fatalf("Recommendation changed between calls: %+v vs %+v", first, got)
		}
	}
}
