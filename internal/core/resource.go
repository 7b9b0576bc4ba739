package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Resource is the interface representing a managed cloud resource.
// Concrete variants embed BaseResource and add their own configuration.
type Resource interface {
	GetID() string
	GetName() string
	GetType() string
	CurrentState() State
	Created() time.Time
	LastChanged() time.Time

	// Describe returns a human-readable summary of the variant's
	// configuration. Read-only, no side effects.
	Describe() string

	// StartMessage is the audit line written when the resource starts.
	StartMessage() string

	Start() error
	Stop() error
	SoftDelete() error
}

// BaseResource holds identity and lifecycle fields shared by all variants and
// owns the state machine. The state field is unexported so it can only move
// through the transition methods.
type BaseResource struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time

	state      State
	lastChange time.Time
}

// NewBase prepares the common part of a resource. New resources always start
// out stopped.
func NewBase(name, resType string) BaseResource {
	now := time.Now()
	return BaseResource{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       resType,
		CreatedAt:  now,
		state:      StateStopped,
		lastChange: now,
	}
}

func (b *BaseResource) GetID() string {
	return b.ID
}

func (b *BaseResource) GetName() string {
	return b.Name
}

func (b *BaseResource) GetType() string {
	return b.Type
}

func (b *BaseResource) CurrentState() State {
	return b.state
}

func (b *BaseResource) Created() time.Time {
	return b.CreatedAt
}

func (b *BaseResource) LastChanged() time.Time {
	return b.lastChange
}

// StartMessage is the default audit line for a start. Variants with
// interesting detail (region etc.) override it.
func (b *BaseResource) StartMessage() string {
	return fmt.Sprintf("%s started", b.Type)
}

// Start moves the resource to running. Only legal from stopped.
func (b *BaseResource) Start() error {
	switch b.state {
	case StateDeleted:
		return &InvalidTransitionError{Name: b.Name, Op: "start", State: b.state, Reason: "cannot start a deleted resource"}
	case StateRunning:
		return &InvalidTransitionError{Name: b.Name, Op: "start", State: b.state, Reason: "already running"}
	}
	b.state = StateRunning
	b.lastChange = time.Now()
	return nil
}

// Stop moves the resource back to stopped. Only legal from running.
func (b *BaseResource) Stop() error {
	switch b.state {
	case StateDeleted:
		return &InvalidTransitionError{Name: b.Name, Op: "stop", State: b.state, Reason: "cannot stop a deleted resource"}
	case StateStopped:
		return &InvalidTransitionError{Name: b.Name, Op: "stop", State: b.state, Reason: "already stopped"}
	}
	b.state = StateStopped
	b.lastChange = time.Now()
	return nil
}

// SoftDelete marks the resource as deleted. The record stays around for audit
// history; deleted is terminal.
func (b *BaseResource) SoftDelete() error {
	switch b.state {
	case StateDeleted:
		return &InvalidTransitionError{Name: b.Name, Op: "delete", State: b.state, Reason: "already deleted"}
	case StateRunning:
		return &InvalidTransitionError{Name: b.Name, Op: "delete", State: b.state, Reason: "must stop the resource before deleting it"}
	}
	b.state = StateDeleted
	b.lastChange = time.Now()
	return nil
}
