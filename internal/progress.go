package internal

import (
	"fmt"
	"math"
)

// Returns a short human readable description of how far
// the tournament has progressed (e.g. "Round of 8").
func (e *Engine) ProgressLabel() string {
	numItems := len(e.items)

	switch e.state {
	case StateCompleted:
		if e.champion != nil {
			return "Winner!"
		}
		if numItems > 0 {
			return "Results"
		}
		return "No Game"
	case StateIdle:
		if numItems == 0 {
			return "No cards"
		}
		return "Ready"
	}

	if numItems == 0 {
		return "No cards"
	}

	// The field size that would be expected at the start of
	// this round if every round halved the field
	expected := float64(numItems) / math.Pow(2, float64(e.roundIndex-1))

	switch {
	case expected >= 2:
		return fmt.Sprintf("Round of %d", int(math.Round(expected)))
	case expected >= 1 && e.roundIndex == e.totalRounds:
		return "Final Round!"
	case numItems == 1:
		return "The One!"
	}

	return fmt.Sprintf("Round %d", e.roundIndex)
}
