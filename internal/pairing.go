package internal

import (
	"iter"
	"strings"
)

// A Pairing holds the two items that currently face
// each other and wait for a winner to be selected.
type Pairing struct {
	ItemA *Item
	ItemB *Item

	// An iterator that goes over the two items
	Items iter.Seq[*Item]
}

// Returns true when the item is one of the two
// members of the pairing
func (p *Pairing) Contains(item *Item) bool {
	return p.ItemA.Equal(item) || p.ItemB.Equal(item)
}

// Returns the pairing's own instance of the given item
// and its opponent.
func (p *Pairing) Resolve(item *Item) (member, opponent *Item) {
	if p.ItemA.Equal(item) {
		return p.ItemA, p.ItemB
	}
	if p.ItemB.Equal(item) {
		return p.ItemB, p.ItemA
	}

	panic("Item is not in the Pairing")
}

func (p *Pairing) String() string {
	var sb strings.Builder
	sb.WriteString(p.ItemA.String())
	sb.WriteString(" vs. ")
	sb.WriteString(p.ItemB.String())
	return sb.String()
}

func NewPairing(itemA, itemB *Item) *Pairing {
	iterator := func(yield func(i *Item) bool) {
		if !yield(itemA) {
			return
		}
		yield(itemB)
	}

	return &Pairing{
		ItemA: itemA,
		ItemB: itemB,
		Items: iterator,
	}
}
