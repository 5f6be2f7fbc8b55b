// Package id issues the int64 primary keys for cards, events and users.
package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu     sync.RWMutex
	node   *snowflake.Node
	nodeID int64
)

// Init sets the node used by New. Re-initializing with the node already in
// use is a no-op; any other node ID replaces it.
func Init(id int64) error {
	mu.Lock()
	defer mu.Unlock()

	if node != nil && nodeID == id {
		return nil
	}

	n, err := snowflake.NewNode(id)
	if err != nil {
		return fmt.Errorf("creating snowflake node %d: %w", id, err)
	}
	node, nodeID = n, id
	return nil
}

// New returns a time-ordered ID. It panics if Init has not succeeded.
func New() int64 {
	mu.RLock()
	defer mu.RUnlock()

	if node == nil {
		panic("id: New called before Init")
	}
	return node.Generate().Int64()
}
