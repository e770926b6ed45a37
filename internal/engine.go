package internal

import (
	"errors"
	"slices"

	"go.uber.org/zap"
)

var (
	ErrInvalidSelection       = errors.New("the selected item is not in the current pairing")
	ErrUnsupportedBracketSize = errors.New("the bracket size is neither 1 nor a power of two")
)

type State int

const (
	// Not started yet
	StateIdle State = iota
	// A pairing is waiting for its winner
	StateAwaitingSelection
	// All pairings of a round resolved, the next round is
	// being set up. Never observable from outside the engine.
	StateRoundTransition
	// The tournament is over
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSelection:
		return "awaiting selection"
	case StateRoundTransition:
		return "round transition"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

type EngineOption func(e *Engine)

// Sets the logger that traces the tournament progression
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Sets the Shuffler that determines the pairing order of each round
func WithShuffler(shuffler Shuffler) EngineOption {
	return func(e *Engine) {
		e.shuffler = shuffler
	}
}

// Makes the pairing order reproducible
func WithSeed(seed int64) EngineOption {
	return WithShuffler(SeededShuffler(SeedRandom, seed))
}

// The Engine runs a single elimination tournament between
// a list of items.
//
// Each round the remaining contenders are shuffled and paired
// up in queue order. Only one pairing is presented at a time.
// The caller picks the winner via Select until a single champion
// remains. An unpaired contender gets a bye into the next round.
//
// The Engine is not safe for concurrent use. A caller has to read
// the result of Select before calling it again.
type Engine struct {
	// The original items in the original order
	items       []*Item
	totalRounds int

	contenders   []*Item
	roundWinners []WinnerRecord
	pairing      *Pairing
	ledger       *RoundLedger
	champion     *Item
	roundIndex   int
	state        State

	shuffler Shuffler
	logger   *zap.Logger
}

// Creates an Engine for the given items.
//
// The engine is idle until Start is called. The items slice is
// not modified. An empty slice is allowed and produces no champion.
// Whether the number of items fits a bracket is up to the caller
// to validate.
func NewEngine(items []*Item, opts ...EngineOption) *Engine {
	engine := &Engine{
		items:       slices.Clone(items),
		totalRounds: getNumRounds(len(items)),
		ledger:      NewRoundLedger(),
		roundIndex:  1,
		state:       StateIdle,
	}

	for _, opt := range opts {
		opt(engine)
	}

	if engine.shuffler == nil {
		engine.shuffler = newTimeSeededShuffler()
	}
	if engine.logger == nil {
		engine.logger = zap.NewNop()
	}

	return engine
}

// Starts a fresh tournament run.
//
// All results of a previous run are discarded and the items
// are shuffled into a new pairing order. With one item or
// less the tournament completes immediately.
func (e *Engine) Start() {
	e.contenders = slices.Clone(e.items)
	e.shuffler(e.contenders)
	e.roundWinners = nil
	e.pairing = nil
	e.ledger = NewRoundLedger()
	e.champion = nil
	e.roundIndex = 1

	e.logger.Debug("tournament started",
		zap.Int("items", len(e.items)),
		zap.Int("totalRounds", e.totalRounds),
	)

	if len(e.items) <= 1 {
		e.contenders = nil
		if len(e.items) == 1 {
			e.champion = e.items[0]
			e.ledger.append([]WinnerRecord{{Winner: e.champion}})
		}
		e.complete()
		return
	}

	e.advance()
}

// Same as Start. The items and the number of rounds stay the same.
func (e *Engine) Reset() {
	e.logger.Debug("tournament reset")
	e.Start()
}

// Selects the winner of the current pairing.
//
// Returns ErrInvalidSelection without changing any state when
// no pairing is active or the winner is not part of it.
func (e *Engine) Select(winner *Item) error {
	if e.state != StateAwaitingSelection || e.pairing == nil {
		e.logger.Debug("selection without active pairing", zap.Stringer("selected", winner))
		return ErrInvalidSelection
	}
	if winner == nil || !e.pairing.Contains(winner) {
		e.logger.Debug("selection outside of the current pairing",
			zap.Stringer("selected", winner),
			zap.Stringer("pairing", e.pairing),
		)
		return ErrInvalidSelection
	}

	winner, opponent := e.pairing.Resolve(winner)
	e.roundWinners = append(e.roundWinners, WinnerRecord{Winner: winner, Opponent: opponent})
	e.pairing = nil

	e.logger.Debug("winner selected",
		zap.Int("round", e.roundIndex),
		zap.Stringer("winner", winner),
		zap.Stringer("opponent", opponent),
	)

	e.advance()
	return nil
}

// Moves the tournament forward until either a new pairing
// waits for a selection or the tournament is complete.
//
// The cases are exhaustive and mutually exclusive:
//   - two or more contenders are queued: pair the first two
//   - one contender is queued: it gets a bye
//   - the queue is empty but there are round winners: the round
//     is complete, either crown the champion or start the next round
//   - neither contenders nor winners exist: nothing to play
func (e *Engine) advance() {
	for {
		switch {
		case len(e.contenders) >= 2:
			e.pairing = NewPairing(e.contenders[0], e.contenders[1])
			e.contenders = e.contenders[2:]
			e.state = StateAwaitingSelection
			e.logger.Debug("next pairing",
				zap.Int("round", e.roundIndex),
				zap.Stringer("pairing", e.pairing),
			)
			return
		case len(e.contenders) == 1:
			e.state = StateRoundTransition
			bye := e.contenders[0]
			e.roundWinners = append(e.roundWinners, WinnerRecord{Winner: bye})
			e.contenders = nil
			e.logger.Debug("bye", zap.Int("round", e.roundIndex), zap.Stringer("item", bye))
		case len(e.roundWinners) > 0:
			e.state = StateRoundTransition
			if e.completeRound() {
				return
			}
		default:
			e.complete()
			return
		}
	}
}

// Records the finished round and either determines the champion
// or queues up the next round. Returns true when the tournament
// is complete.
func (e *Engine) completeRound() bool {
	appended := e.ledger.append(e.roundWinners)
	e.logger.Debug("round completed",
		zap.Int("round", e.roundIndex),
		zap.Int("winners", len(e.roundWinners)),
		zap.Bool("recorded", appended),
	)

	if len(e.roundWinners) == 1 && e.roundIndex >= e.totalRounds {
		e.champion = e.roundWinners[0].Winner
		e.roundWinners = nil
		e.complete()
		return true
	}

	e.roundIndex += 1
	next := make([]*Item, 0, len(e.roundWinners))
	for _, rec := range e.roundWinners {
		next = append(next, rec.Winner)
	}
	e.shuffler(next)
	e.contenders = next
	e.roundWinners = nil

	return false
}

func (e *Engine) complete() {
	e.pairing = nil
	e.state = StateCompleted
	e.logger.Debug("tournament completed", zap.Stringer("champion", e.champion))
}

// Returns the pairing that waits for a selection or nil
func (e *Engine) CurrentPairing() *Pairing {
	return e.pairing
}

// Returns the winner of the tournament or nil if the tournament
// is not complete or had no items.
func (e *Engine) Champion() *Item {
	return e.champion
}

func (e *Engine) IsComplete() bool {
	return e.state == StateCompleted
}

func (e *Engine) State() State {
	return e.state
}

// Returns a copy of the original items in their original order
func (e *Engine) Items() []*Item {
	return slices.Clone(e.items)
}

// The number of rounds needed to determine a champion.
// It only depends on the number of items.
func (e *Engine) TotalRounds() int {
	return e.totalRounds
}

// The 1-based index of the round in progress
func (e *Engine) RoundIndex() int {
	return e.roundIndex
}

// Returns the results of all completed rounds
func (e *Engine) Ledger() *RoundLedger {
	return e.ledger
}

// Returns the number of recorded rounds in which at least
// one pairing was played.
func (e *Engine) RoundsPlayed() int {
	played := 0
	for _, r := range e.ledger.rounds {
		if r.HasPlayed() {
			played += 1
		}
	}
	return played
}

// Returns true when the item is the champion or advanced
// out of any completed round.
func (e *Engine) WasChosen(item *Item) bool {
	if e.champion != nil && e.champion.Equal(item) {
		return true
	}
	return e.ledger.HasWon(item)
}

// Reconstructs the bracket tree of the run so far
func (e *Engine) Bracket() (*Tree, error) {
	return Reconstruct(e.items, e.ledger)
}

// Returns ceil(log2(numItems))
func getNumRounds(numItems int) int {
	rounds := 0
	for capacity := 1; capacity < numItems; capacity <<= 1 {
		rounds += 1
	}
	return rounds
}
