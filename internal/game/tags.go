package game

import (
	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

// tagTable is the typed side-table mapping body handles to their game
// metadata. A handle missing from the table is not a game shape: wall
// contacts and already-destroyed bodies both read as misses, never as a
// crash. Owned by Game and touched only from the game goroutine.
type tagTable map[physics.Body]shape.Tag

func (t tagTable) lookup(b physics.Body) (shape.Tag, bool) {
	tag, ok := t[b]
	return tag, ok
}

func (t tagTable) set(b physics.Body, tag shape.Tag) {
	t[b] = tag
}

func (t tagTable) remove(b physics.Body) {
	delete(t, b)
}
