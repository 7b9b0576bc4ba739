package core

import "fmt"

// ValidationError reports a construction field outside its allowed domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for '%s': %s", e.Field, e.Reason)
}

// DuplicateNameError reports a name collision on create. Deleted resources
// keep their name reserved, so this also fires for names of deleted resources.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a resource named '%s' already exists", e.Name)
}

// NotFoundError reports an operation on a name that was never created.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource '%s' not found", e.Name)
}

// UnknownTypeError reports a registry miss.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown resource type: '%s'", e.Type)
}

// DuplicateTypeError reports a registration collision. Re-registration is
// rejected, not overwritten.
type DuplicateTypeError struct {
	Type string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("resource type '%s' is already registered", e.Type)
}

// InvalidTransitionError reports an illegal lifecycle move. It carries the
// attempted operation and the state the resource was in, so the CLI can show
// a precise message.
type InvalidTransitionError struct {
	Name   string
	Op     string
	State  State
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s '%s': %s", e.Op, e.Name, e.Reason)
}
