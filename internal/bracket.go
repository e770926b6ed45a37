package internal

import "slices"

// A Tree is the bracket of a tournament as a list of columns.
//
// Column 0 holds the original items in their original order.
// Every following column holds one entry per pair of entries in
// the column before it: a winner of the round between the two
// columns or nil when that round has no recorded result yet. The
// last column has a single entry which is the champion once it is
// known.
type Tree struct {
	columns [][]*Item
}

// Returns true when numItems can be shown as a bracket.
// That is the case for 1 and all powers of two.
func IsSupportedBracketSize(numItems int) bool {
	return numItems >= 1 && numItems&(numItems-1) == 0
}

// Derives the bracket tree from the original items and the
// ledger of a finished or running tournament.
//
// Column k+1 is filled from ledger round k. Each pair of neighboring
// entries in column k is looked up in that round first. If the two
// items faced each other, the recorded winner fills the entry. Rounds
// after the first are reshuffled, so neighbors may never have met.
// Once round k is recorded, such entries are filled in order with
// the round's remaining winners. A trailing entry without a neighbor
// moves on unchanged. Entries stay pending (nil) while their round
// is not recorded, so the last column holds the champion exactly
// when the tournament is complete.
//
// Returns ErrUnsupportedBracketSize unless the number of
// items is 1 or a power of two.
func Reconstruct(items []*Item, ledger *RoundLedger) (*Tree, error) {
	if !IsSupportedBracketSize(len(items)) {
		return nil, ErrUnsupportedBracketSize
	}
	if ledger == nil {
		ledger = NewRoundLedger()
	}

	columns := halveColumn(slices.Clone(items), ledger, 0)

	return &Tree{columns: columns}, nil
}

// Returns the given column followed by all columns that
// result from repeatedly halving it. The column's pairs are
// resolved by the ledger round at index k.
func halveColumn(column []*Item, ledger *RoundLedger, k int) [][]*Item {
	if len(column) <= 1 {
		return [][]*Item{column}
	}

	round := ledger.Round(k)

	next := make([]*Item, 0, (len(column)+1)/2)
	for i := 0; i < len(column); i += 2 {
		if i+1 == len(column) {
			next = append(next, column[i])
			continue
		}
		next = append(next, pairWinner(column[i], column[i+1], round))
	}
	fillByPosition(next, round)

	return append([][]*Item{column}, halveColumn(next, ledger, k+1)...)
}

// Returns the recorded winner of the pairing between a and b
// or nil if they did not play each other in the round.
func pairWinner(a, b *Item, round *LedgerRound) *Item {
	if a == nil || b == nil || round == nil {
		return nil
	}
	if rec, ok := round.RecordOf(a, b); ok {
		return rec.Winner
	}
	return nil
}

// Fills the pending entries of the column with the winners of
// the round that are not in the column yet, in record order.
func fillByPosition(column []*Item, round *LedgerRound) {
	if round == nil {
		return
	}
	remaining := slices.DeleteFunc(round.Winners(), func(w *Item) bool {
		return containsItem(column, w)
	})
	for i, entry := range column {
		if entry != nil || len(remaining) == 0 {
			continue
		}
		column[i] = remaining[0]
		remaining = remaining[1:]
	}
}

func (t *Tree) NumColumns() int {
	return len(t.columns)
}

// Returns a copy of the column at index k or nil when
// k is out of bounds
func (t *Tree) Column(k int) []*Item {
	if k < 0 || k >= len(t.columns) {
		return nil
	}
	return slices.Clone(t.columns[k])
}

// Returns a copy of all columns
func (t *Tree) Columns() [][]*Item {
	columns := make([][]*Item, 0, len(t.columns))
	for _, c := range t.columns {
		columns = append(columns, slices.Clone(c))
	}
	return columns
}

// Returns the entry at index i of column k.
// Returns nil if the entry is pending or out of bounds.
func (t *Tree) At(k, i int) *Item {
	if k < 0 || k >= len(t.columns) {
		return nil
	}
	column := t.columns[k]
	if i < 0 || i >= len(column) {
		return nil
	}
	return column[i]
}

// Returns the single entry of the last column or nil
// if it is still pending
func (t *Tree) Champion() *Item {
	return t.At(len(t.columns)-1, 0)
}

// Returns true when every entry of the tree is known
func (t *Tree) IsComplete() bool {
	for _, c := range t.columns {
		if slices.Contains(c, nil) {
			return false
		}
	}
	return true
}
