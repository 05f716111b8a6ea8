package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
)

// OpState is the lifecycle of an AuthOperation.
type OpState int

const (
	OpPending OpState = iota
	OpResolved
	OpFailed
)

func (s OpState) String() string {
	switch s {
	case OpPending:
		return "pending"
	case OpResolved:
		return "resolved"
	case OpFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AuthOperation is the handle of an in-flight login or signup. It moves
// from pending to exactly one of resolved or failed, and Done is closed
// at that point. It cannot be cancelled.
type AuthOperation struct {
	done chan struct{}

	mu    sync.Mutex
	state OpState
	user  models.User
	err   error
}

func newAuthOperation() *AuthOperation {
	return &AuthOperation{done: make(chan struct{})}
}

func (op *AuthOperation) resolve(u models.User) {
	op.mu.Lock()
	op.state, op.user = OpResolved, u
	op.mu.Unlock()
	close(op.done)
}

func (op *AuthOperation) fail(err error) {
	op.mu.Lock()
	op.state, op.err = OpFailed, err
	op.mu.Unlock()
	close(op.done)
}

// State reports the current state without blocking.
func (op *AuthOperation) State() OpState {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.state
}

// Done is closed once the operation has resolved or failed.
func (op *AuthOperation) Done() <-chan struct{} {
	return op.done
}

// Wait blocks until the operation finishes or ctx ends and reports
// whether it resolved. An ended ctx returns false but the operation
// keeps running.
func (op *AuthOperation) Wait(ctx context.Context) bool {
	select {
	case <-op.done:
		return op.State() == OpResolved
	case <-ctx.Done():
		return false
	}
}

// Err is the failure cause, nil unless the state is OpFailed.
func (op *AuthOperation) Err() error {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.err
}

// User is the authenticated user once resolved.
func (op *AuthOperation) User() (models.User, bool) {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.user, op.state == OpResolved
}
