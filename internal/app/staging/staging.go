// Package staging runs a use case's writes as an ordered unit: actions
// execute in order and, when one fails, those already executed are rolled
// back in reverse.
//
//	unit := staging.New()
//	_ = unit.Stage(staging.NewAction("store screenshot", saveFile, removeFile))
//	_ = unit.Stage(staging.NewAction("insert feedback", insertRow, nil))
//
//	if err := unit.Commit(ctx); err != nil {
//	    // the stored screenshot has been removed again
//	}
package staging

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyCommitted is returned when staging into or committing a unit
// that has already been committed.
var ErrAlreadyCommitted = errors.New("unit already committed")

// Action is a staged write.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute.
	Rollback(ctx context.Context) error

	// Description names the action in errors and logs.
	Description() string
}

// NewAction builds an Action from functions. A nil rollback makes the
// action irreversible, which is fine for the last action in a unit.
func NewAction(description string, execute, rollback func(ctx context.Context) error) Action {
	return &funcAction{description: description, execute: execute, rollback: rollback}
}

type funcAction struct {
	description string
	execute     func(ctx context.Context) error
	rollback    func(ctx context.Context) error
}

func (a *funcAction) Execute(ctx context.Context) error { return a.execute(ctx) }

func (a *funcAction) Rollback(ctx context.Context) error {
	if a.rollback == nil {
		return nil
	}

	return a.rollback(ctx)
}

func (a *funcAction) Description() string { return a.description }

// Unit collects actions for a single commit.
type Unit struct {
	mu        sync.Mutex
	actions   []Action
	committed bool
}

// New creates an empty unit.
func New() *Unit {
	return &Unit{}
}

// Stage appends an action.
func (u *Unit) Stage(action Action) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return ErrAlreadyCommitted
	}

	u.actions = append(u.actions, action)

	return nil
}

// RollbackError reports rollbacks that failed after an action failed.
// Errors.Is/As see both the action failure and the rollback failures.
type RollbackError struct {
	Failed    string
	Cause     error
	Rollbacks []error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("action %q failed: %v (rollback: %v)", e.Failed, e.Cause, errors.Join(e.Rollbacks...))
}

// Unwrap exposes the action failure and every rollback failure.
func (e *RollbackError) Unwrap() []error {
	return append([]error{e.Cause}, e.Rollbacks...)
}

// Commit executes the staged actions in order. If one fails, the actions
// executed before it are rolled back in reverse order; the failed action
// itself is not. A unit can be committed once, successful or not.
func (u *Unit) Commit(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return ErrAlreadyCommitted
	}

	u.committed = true

	for i, action := range u.actions {
		err := action.Execute(ctx)
		if err == nil {
			continue
		}

		var rollbackErrs []error

		for j := i - 1; j >= 0; j-- {
			// Rollback must run even when ctx was the reason Execute failed.
			if rbErr := u.actions[j].Rollback(context.WithoutCancel(ctx)); rbErr != nil {
				rollbackErrs = append(rollbackErrs, fmt.Errorf("%s: %w", u.actions[j].Description(), rbErr))
			}
		}

		if len(rollbackErrs) > 0 {
			return &RollbackError{Failed: action.Description(), Cause: err, Rollbacks: rollbackErrs}
		}

		return fmt.Errorf("action %q failed: %w", action.Description(), err)
	}

	return nil
}

// Actions returns a copy of the staged actions.
func (u *Unit) Actions() []Action {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]Action, len(u.actions))
	copy(out, u.actions)

	return out
}
