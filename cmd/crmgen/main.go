// Command crmgen generates a synthetic CRM workbook for local development
// and demos. Each row is a customer purchase with linked call feedback and
// sentiment, plus the customer's purchase history before that sale.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

var firstNames = []string{"Aarav", "Vivaan", "Aditya", "Krishna", "Arjun", "Riya", "Ananya", "Isha", "Kavya", "Meera"}

var lastNames = []string{"Sharma", "Verma", "Reddy", "Iyer", "Patel", "Gupta", "Kumar", "Das", "Nair", "Chopra"}

var products = []string{
	"Cosmetic Care", "Home Essentials", "Electronics", "Groceries",
	"Clothing", "Sports Gear", "Furniture", "Books", "Toys", "Kitchenware",
}

// feedbackSentiments links each canned feedback line to its sentiment label.
var feedbackSentiments = []struct {
	feedback  string
	sentiment string
}{
	{"Asked for discount", "Neutral"},
	{"Happy with product", "Positive"},
	{"Interested in EMI option", "Neutral"},
	{"Had issue with delivery", "Negative"},
	{"Requested callback", "Neutral"},
	{"Price too high", "Negative"},
	{"Wants bulk purchase", "Positive"},
	{"Positive response", "Positive"},
	{"Not interested right now", "Negative"},
}

var header = []string{
	"Name", "Email", "Phone", "Product",
	"Invoice", "Date of Purchase", "Call Feedback", "Sentiment",
	"Previous Purchases",
}

func main() {
	out := flag.String("out", "crm_data.xlsx", "output workbook path")
	count := flag.Int("count", 500, "number of customer rows")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f := excelize.NewFile()
	writeRow(f, 1, toInterfaces(header))

	// Purchase history per email, so repeat rows accumulate purchases.
	history := map[string][]string{}

	for i := 0; i < *count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		name := first + " " + last
		email := fmt.Sprintf("%s%s%d@email.com", strings.ToLower(first), strings.ToLower(last), i)
		phone := fmt.Sprintf("+91%d", 6000000000+rng.Int63n(4000000000))
		product := products[rng.Intn(len(products))]
		invoice := fmt.Sprintf("INV%d", 1000+i)
		date := randomDate(rng).Format("2006-01-02")
		fs := feedbackSentiments[rng.Intn(len(feedbackSentiments))]

		if _, seen := history[email]; !seen {
			history[email] = samplePurchases(rng)
		}
		previous := join(history[email])
		history[email] = append(history[email], product)

		writeRow(f, i+2, []interface{}{
			name, email, phone, product, invoice, date, fs.feedback, fs.sentiment, previous,
		})
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("Failed to save CRM workbook")
	}

	log.Info().Str("path", *out).Int("rows", *count).Msg("CRM workbook generated")
}

func writeRow(f *excelize.File, row int, values []interface{}) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		log.Fatal().Err(err).Int("row", row).Msg("Failed to compute cell name")
	}
	if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
		log.Fatal().Err(err).Int("row", row).Msg("Failed to write row")
	}
}

// samplePurchases picks one to three distinct products as the pre-existing
// history for a new customer.
func samplePurchases(rng *rand.Rand) []string {
	perm := rng.Perm(len(products))
	n := 1 + rng.Intn(3)
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, products[idx])
	}
	return out
}

func randomDate(rng *rand.Rand) time.Time {
	twoYears := int64(2 * 365 * 24 * time.Hour / time.Second)
	offset := time.Duration(rng.Int63n(twoYears)) * time.Second
	return time.Now().Add(-offset)
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func join(purchases []string) string {
	if len(purchases) == 0 {
		return "None"
	}
	out := purchases[0]
	for _, p := range purchases[1:] {
		out += ", " + p
	}
	return out
}
