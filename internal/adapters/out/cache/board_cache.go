// Package cache provides the in-process store for the courier board
// snapshot built by the background refresh job.
package cache

import (
	"sync"

	"lytefood/internal/core/ports"
)

// InMemoryCourierBoardCache holds the latest courier board behind a RWMutex.
// Writes are last-write-wins.
type InMemoryCourierBoardCache struct {
	mu     sync.RWMutex
	board  ports.CourierBoard
	filled bool
}

// NewInMemoryCourierBoardCache creates an empty cache. Get reports no board
// until the first Set.
func NewInMemoryCourierBoardCache() *InMemoryCourierBoardCache {
	return &InMemoryCourierBoardCache{}
}

// Set stores a freshly built board.
func (c *InMemoryCourierBoardCache) Set(board ports.CourierBoard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.board = board
	c.filled = true
}

// Get returns the latest stored board and whether one was stored yet.
func (c *InMemoryCourierBoardCache) Get() (ports.CourierBoard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.board, c.filled
}
