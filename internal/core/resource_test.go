package core

import (
	"errors"
	"testing"
)

func TestNewBase_StartsStopped(t *testing.T) {
	base := NewBase("web1", "AppService")

	if base.CurrentState() != StateStopped {
		t.Errorf("New resource state = %v, want %v", base.CurrentState(), StateStopped)
	}
	if base.GetID() == "" {
		t.Error("Expected a generated instance id")
	}
	if base.GetName() != "web1" || base.GetType() != "AppService" {
		t.Errorf("Identity mismatch: %s/%s", base.GetName(), base.GetType())
	}
}

func TestBaseResource_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(b *BaseResource) // drive into the pre-state
		op        func(b *BaseResource) error
		wantErr   bool
		wantState State
	}{
		{
			name:      "start from stopped",
			setup:     func(b *BaseResource) {},
			op:        (*BaseResource).Start,
			wantErr:   false,
			wantState: StateRunning,
		},
		{
			name:      "start while running",
			setup:     func(b *BaseResource) { _ = b.Start() },
			op:        (*BaseResource).Start,
			wantErr:   true,
			wantState: StateRunning,
		},
		{
			name:      "start after delete",
			setup:     func(b *BaseResource) { _ = b.SoftDelete() },
			op:        (*BaseResource).Start,
			wantErr:   true,
			wantState: StateDeleted,
		},
		{
			name:      "stop from running",
			setup:     func(b *BaseResource) { _ = b.Start() },
			op:        (*BaseResource).Stop,
			wantErr:   false,
			wantState: StateStopped,
		},
		{
			name:      "stop while stopped",
			setup:     func(b *BaseResource) {},
			op:        (*BaseResource).Stop,
			wantErr:   true,
			wantState: StateStopped,
		},
		{
			name:      "stop after delete",
			setup:     func(b *BaseResource) { _ = b.SoftDelete() },
			op:        (*BaseResource).Stop,
			wantErr:   true,
			wantState: StateDeleted,
		},
		{
			name:      "delete from stopped",
			setup:     func(b *BaseResource) {},
			op:        (*BaseResource).SoftDelete,
			wantErr:   false,
			wantState: StateDeleted,
		},
		{
			name:      "delete while running",
			setup:     func(b *BaseResource) { _ = b.Start() },
			op:        (*BaseResource).SoftDelete,
			wantErr:   true,
			wantState: StateRunning,
		},
		{
			name:      "delete twice",
			setup:     func(b *BaseResource) { _ = b.SoftDelete() },
			op:        (*BaseResource).SoftDelete,
			wantErr:   true,
			wantState: StateDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewBase("res", "CacheDB")
			tt.setup(&base)

			err := tt.op(&base)
			if (err != nil) != tt.wantErr {
				t.Errorf("Error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var transErr *InvalidTransitionError
				if !errors.As(err, &transErr) {
					t.Errorf("Expected InvalidTransitionError, got %T", err)
				}
			}
			if base.CurrentState() != tt.wantState {
				t.Errorf("State = %v, want %v", base.CurrentState(), tt.wantState)
			}
		})
	}
}

func TestBaseResource_DefaultStartMessage(t *testing.T) {
	base := NewBase("db1", "CacheDB")
	if got := base.StartMessage(); got != "CacheDB started" {
		t.Errorf("StartMessage = %q", got)
	}
}
