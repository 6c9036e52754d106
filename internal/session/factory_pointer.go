package session

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// FactoryPointer is the explicit "active factory" the client reads from.
// It has a single writer, the governance redeployment workflow; every
// resynchronization reads the pointer at the moment it starts, so a
// reload that follows a switch provably targets the factory just written.
type FactoryPointer struct {
	mu   sync.RWMutex
	addr common.Address
}

// NewFactoryPointer creates a pointer at the configured factory address.
func NewFactoryPointer(addr common.Address) *FactoryPointer {
	return &FactoryPointer{addr: addr}
}

// Get returns the active factory address.
func (p *FactoryPointer) Get() common.Address {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.addr
}

// Set switches the active factory. Only the governance workflow calls
// this.
func (p *FactoryPointer) Set(addr common.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addr = addr
}
