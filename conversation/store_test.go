package conversation

import (
	"fmt"
	"sync"
	"testing"
)

func TestStore_RecordAndHistoryOrder(t *testing.T) {
	store := NewStore()

	for i := 0; i < 5; i++ {
		store.Record(Interaction{
			Text:      fmt.Sprintf("message %d", i),
			Sentiment: SentimentNeutral,
		})
	}

	history := store.History()
	if len(history) != 5 {
		t.Fatalf("Expected 5 interactions, got %d", len(history))
	}
	for i, interaction := range history {
		expected := fmt.Sprintf("message %d", i)
		if interaction.Text != expected {
			t.Errorf("Expected history[%d].Text '%s', got '%s'", i, expected, interaction.Text)
		}
	}
}

func TestStore_AnalyticsMatchesHistory(t *testing.T) {
	store := NewStore()

	sentiments := []string{
		SentimentPositive, SentimentPositive, SentimentNegative,
		SentimentNeutral, SentimentError, SentimentPositive,
	}
	for _, s := range sentiments {
		store.Record(Interaction{Text: "t", Sentiment: s})
	}

	analytics := store.Analytics()

	if analytics.Total != len(sentiments) {
		t.Errorf("Expected total %d, got %d", len(sentiments), analytics.Total)
	}

	sum := 0
	for _, count := range analytics.Distribution {
		sum += count
	}
	if sum != len(sentiments) {
		t.Errorf("Distribution sums to %d, expected %d", sum, len(sentiments))
	}

	if analytics.Distribution[SentimentPositive] != 3 {
		t.Errorf("Expected 3 positive, got %d", analytics.Distribution[SentimentPositive])
	}
	if analytics.Distribution[SentimentNegative] != 1 {
		t.Errorf("Expected 1 negative, got %d", analytics.Distribution[SentimentNegative])
	}
}

func TestStore_EmptyAnalytics(t *testing.T) {
	store := NewStore()

	analytics := store.Analytics()
	if analytics.Total != 0 {
		t.Errorf("Expected total 0, got %d", analytics.Total)
	}
	if len(analytics.Distribution) != 0 {
		t.Errorf("Expected empty distribution, got %v", analytics.Distribution)
	}
}

func TestStore_ConcurrentRecords(t *testing.T) {
	store := NewStore()

	const workers = 10
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				store.Record(Interaction{Text: "t", Sentiment: SentimentPositive})
			}
		}()
	}
	wg.Wait()

	analytics := store.Analytics()
	if analytics.Total != workers*perWorker {
		t.Errorf("Expected total %d, got %d", workers*perWorker, analytics.Total)
	}
	if len(store.History()) != workers*perWorker {
		t.Errorf("Expected %d history entries, got %d", workers*perWorker, len(store.History()))
	}
}

func TestStore_HistoryReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Record(Interaction{Text: "original", Sentiment: SentimentNeutral})

	history := store.History()
	history[0].Text = "mutated"

	if store.History()[0].Text != "original" {
		t.Error("Mutating the returned history slice should not affect the store")
	}
}
