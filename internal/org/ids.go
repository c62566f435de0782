package org

import "sync/atomic"

// IDGenerator hands out employee IDs. The first ID is 1 and every later ID
// is one greater than the previous. It is safe for concurrent use.
type IDGenerator struct {
	last atomic.Uint64
}

// NewIDGenerator creates a generator whose first ID is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next ID.
func (g *IDGenerator) Next() ID {
	return ID(g.last.Add(1))
}

// Last returns the most recently issued ID, or 0 if none has been issued.
func (g *IDGenerator) Last() ID {
	return ID(g.last.Load())
}
