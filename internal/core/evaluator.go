package core

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
)

// ResourceView is the flattened attribute set that filter expressions run
// against, e.g. `State == "running" && Type == "AppService"`.
type ResourceView struct {
	ID      string
	Name    string
	Type    string
	State   string
	Created time.Time
}

// NewView builds the filterable view of a resource.
func NewView(r Resource) ResourceView {
	return ResourceView{
		ID:      r.GetID(),
		Name:    r.GetName(),
		Type:    r.GetType(),
		State:   r.CurrentState().String(),
		Created: r.Created(),
	}
}

// MatchFilter compiles and evaluates a string expression against the view.
// Returns true if the filter matches (or is empty), false otherwise.
func MatchFilter(filter string, view ResourceView) (bool, error) {
	if filter == "" {
		return true, nil
	}

	program, err := expr.Compile(filter, expr.Env(view))
	if err != nil {
		return false, fmt.Errorf("invalid filter '%s': %v", filter, err)
	}

	output, err := expr.Run(program, view)
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter must return a boolean, got %T", output)
	}

	return result, nil
}
