// Package conversation owns the in-memory interaction history and the
// per-sentiment tally derived from it. One Store is constructed at startup and
// shared by all request handlers; both structures live for the process
// lifetime and are never persisted.
package conversation

import "sync"

// Sentiment labels recorded in the tally.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
	SentimentError    = "Error"
)

// Interaction is one recorded text-or-audio analysis result. Immutable once
// appended.
type Interaction struct {
	Text        string `json:"text"`
	Sentiment   string `json:"sentiment"`
	Tone        string `json:"tone"`
	Explanation string `json:"explanation"`
	Timestamp   string `json:"timestamp"`
}

// Analytics is the aggregate view over all recorded interactions.
type Analytics struct {
	Total        int            `json:"total"`
	Distribution map[string]int `json:"distribution"`
}

// Store keeps the ordered interaction history and the sentiment tally.
// A single mutex guards both so the tally always equals the multiset count of
// sentiments over the history, at every observation point.
type Store struct {
	mu      sync.RWMutex
	history []Interaction
	tally   map[string]int
}

func NewStore() *Store {
	return &Store{tally: make(map[string]int)}
}

// Record appends the interaction and increments the tally bucket for its
// sentiment in one critical section.
func (s *Store) Record(interaction Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, interaction)
	s.tally[interaction.Sentiment]++
}

// History returns the recorded interactions in insertion order, oldest first.
func (s *Store) History() []Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Interaction, len(s.history))
	copy(out, s.history)
	return out
}

// Analytics returns the total count and the full sentiment distribution.
func (s *Store) Analytics() Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	distribution := make(map[string]int, len(s.tally))
	total := 0
	for sentiment, count := range s.tally {
		distribution[sentiment] = count
		total += count
	}
	return Analytics{Total: total, Distribution: distribution}
}
