package internal

import (
	"slices"

	"github.com/google/uuid"
)

// An ItemId is unique among the items of a tournament.
type ItemId string

// An Item is one contestant of a tournament (e.g. a card).
//
// Items are immutable once created. Two items are the same
// contestant when their ids are equal, even if their names
// collide.
type Item struct {
	id    ItemId
	name  string
	image []byte
}

func (i *Item) Id() ItemId {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

// Returns a copy of the image data or nil when the
// item has no image.
func (i *Item) Image() []byte {
	return slices.Clone(i.image)
}

func (i *Item) HasImage() bool {
	return len(i.image) > 0
}

// Returns true when both items carry the same id.
// Nil items are only equal to each other.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.id == other.id
}

func (i *Item) String() string {
	if i == nil {
		return "[Pending]"
	}
	return i.name
}

// Creates an item with a freshly generated id
func NewItem(name string, image []byte) *Item {
	return NewItemWithId(ItemId(uuid.NewString()), name, image)
}

// Creates an item that keeps an id which was assigned
// elsewhere (e.g. by the theme storage).
func NewItemWithId(id ItemId, name string, image []byte) *Item {
	return &Item{id: id, name: name, image: slices.Clone(image)}
}

func containsItem(items []*Item, item *Item) bool {
	return slices.ContainsFunc(items, item.Equal)
}
