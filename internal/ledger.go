package internal

import "slices"

// A WinnerRecord is the outcome of one pairing.
//
// A record without an Opponent is a bye: the winner
// advanced without playing.
type WinnerRecord struct {
	Winner   *Item
	Opponent *Item
}

func (r WinnerRecord) IsBye() bool {
	return r.Opponent == nil
}

// Returns true when the record's winner and opponent are
// exactly the two given items, in any order.
func (r WinnerRecord) Matches(a, b *Item) bool {
	if r.IsBye() || a == nil || b == nil {
		return false
	}
	return (r.Winner.Equal(a) && r.Opponent.Equal(b)) ||
		(r.Winner.Equal(b) && r.Opponent.Equal(a))
}

// A LedgerRound is the recorded result of one completed round.
// The record order is the order in which the pairings resolved,
// followed by the bye if there was one.
type LedgerRound struct {
	records []WinnerRecord
}

// Returns a copy of the round's records
func (r *LedgerRound) Records() []WinnerRecord {
	return slices.Clone(r.records)
}

func (r *LedgerRound) Len() int {
	return len(r.records)
}

// Returns the items that advanced out of this round
func (r *LedgerRound) Winners() []*Item {
	winners := make([]*Item, 0, len(r.records))
	for _, rec := range r.records {
		winners = append(winners, rec.Winner)
	}
	return winners
}

// Returns the items that entered this round.
func (r *LedgerRound) Contenders() []*Item {
	contenders := make([]*Item, 0, 2*len(r.records))
	for _, rec := range r.records {
		contenders = append(contenders, rec.Winner)
		if !rec.IsBye() {
			contenders = append(contenders, rec.Opponent)
		}
	}
	return contenders
}

// Returns true when at least one record of the round
// was an actual pairing
func (r *LedgerRound) HasPlayed() bool {
	return slices.ContainsFunc(r.records, func(rec WinnerRecord) bool { return !rec.IsBye() })
}

// Returns the record of the pairing between a and b
func (r *LedgerRound) RecordOf(a, b *Item) (WinnerRecord, bool) {
	i := slices.IndexFunc(r.records, func(rec WinnerRecord) bool { return rec.Matches(a, b) })
	if i < 0 {
		return WinnerRecord{}, false
	}
	return r.records[i], true
}

func (r *LedgerRound) sameWinners(other *LedgerRound) bool {
	return slices.EqualFunc(r.Winners(), other.Winners(), (*Item).Equal)
}

// The RoundLedger is the append-only history of a tournament.
// It holds one LedgerRound per completed round.
type RoundLedger struct {
	rounds []*LedgerRound
}

func (l *RoundLedger) Len() int {
	return len(l.rounds)
}

// Returns the round at index i (0-based) or nil if that
// round has not been completed.
func (l *RoundLedger) Round(i int) *LedgerRound {
	if i < 0 || i >= len(l.rounds) {
		return nil
	}
	return l.rounds[i]
}

// Returns the most recently completed round or nil
func (l *RoundLedger) Last() *LedgerRound {
	return l.Round(len(l.rounds) - 1)
}

// Returns a copy of the list of completed rounds
func (l *RoundLedger) Rounds() []*LedgerRound {
	return slices.Clone(l.rounds)
}

// Looks up the record that the given winner produced in
// the round at index i.
func (l *RoundLedger) RecordOfWinner(winner *Item, i int) (WinnerRecord, bool) {
	round := l.Round(i)
	if round == nil {
		return WinnerRecord{}, false
	}
	for _, rec := range round.records {
		if rec.Winner.Equal(winner) {
			return rec, true
		}
	}
	return WinnerRecord{}, false
}

// Returns true when the item won any of the recorded rounds
func (l *RoundLedger) HasWon(item *Item) bool {
	for _, r := range l.rounds {
		if containsItem(r.Winners(), item) {
			return true
		}
	}
	return false
}

// Appends a completed round. The append is skipped and false
// is returned when the round has the same winners as the
// previous round.
func (l *RoundLedger) append(records []WinnerRecord) bool {
	round := &LedgerRound{records: slices.Clone(records)}
	last := l.Last()
	if last != nil && last.sameWinners(round) {
		return false
	}
	l.rounds = append(l.rounds, round)
	return true
}

func NewRoundLedger() *RoundLedger {
	return &RoundLedger{}
}
