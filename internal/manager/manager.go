package manager

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/GopalTomar/Cloud-Connect/internal/audit"
	"github.com/GopalTomar/Cloud-Connect/internal/core"
	"github.com/GopalTomar/Cloud-Connect/internal/registry"
)

// record pairs a resource with its in-memory audit history. Records are never
// removed: delete is a state, not an eviction.
type record struct {
	res     core.Resource
	history []audit.Entry
}

// Manager owns the resource collection. It enforces name uniqueness, mediates
// every lifecycle transition and forwards audit entries to the sink. A single
// mutex guards the read-check-mutate sequence so the uniqueness and
// transition invariants hold under concurrent callers too.
type Manager struct {
	mu        sync.Mutex
	registry  *registry.Registry
	sink      audit.Sink
	resources map[string]*record
	order     []string
}

// New builds a manager on top of a populated registry. The sink may be nil;
// audit history is kept in memory either way.
func New(reg *registry.Registry, sink audit.Sink) *Manager {
	return &Manager{
		registry:  reg,
		sink:      sink,
		resources: make(map[string]*record),
	}
}

// Create constructs a resource of the given type under a unique name. The
// name check runs first, so a validation failure never reserves the name and
// a duplicate name is rejected before any factory runs.
func (m *Manager) Create(resType, name string, params map[string]interface{}) (core.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.resources[name]; exists {
		return nil, &core.DuplicateNameError{Name: name}
	}

	res, err := m.registry.Create(resType, name, params)
	if err != nil {
		return nil, err
	}

	rec := &record{res: res}
	m.resources[name] = rec
	m.order = append(m.order, name)

	m.audit(rec, name, fmt.Sprintf("%s created (id=%s)", res.GetType(), res.GetID()))
	return res, nil
}

// Start moves the named resource to running and returns it for display.
func (m *Manager) Start(name string) (core.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.resources[name]
	if !exists {
		return nil, &core.NotFoundError{Name: name}
	}
	if err := rec.res.Start(); err != nil {
		return nil, err
	}

	m.audit(rec, name, rec.res.StartMessage())
	return rec.res, nil
}

// Stop moves the named resource back to stopped.
func (m *Manager) Stop(name string) (core.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.resources[name]
	if !exists {
		return nil, &core.NotFoundError{Name: name}
	}
	if err := rec.res.Stop(); err != nil {
		return nil, err
	}

	m.audit(rec, name, fmt.Sprintf("%s stopped successfully", rec.res.GetType()))
	return rec.res, nil
}

// Delete soft-deletes the named resource. The record and its history stay
// queryable, and the name stays reserved.
func (m *Manager) Delete(name string) (core.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.resources[name]
	if !exists {
		return nil, &core.NotFoundError{Name: name}
	}
	if err := rec.res.SoftDelete(); err != nil {
		return nil, err
	}

	m.audit(rec, name, fmt.Sprintf("%s marked as deleted", rec.res.GetType()))
	return rec.res, nil
}

// ViewLogs returns the ordered audit history of the named resource. Works in
// any state, including deleted.
func (m *Manager) ViewLogs(name string) ([]audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.resources[name]
	if !exists {
		return nil, &core.NotFoundError{Name: name}
	}

	entries := make([]audit.Entry, len(rec.history))
	copy(entries, rec.history)
	return entries, nil
}

// Get returns the named resource.
func (m *Manager) Get(name string) (core.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.resources[name]
	if !exists {
		return nil, &core.NotFoundError{Name: name}
	}
	return rec.res, nil
}

// Describe returns the configuration summary of the named resource.
func (m *Manager) Describe(name string) (string, error) {
	res, err := m.Get(name)
	if err != nil {
		return "", err
	}
	return res.Describe(), nil
}

// List returns all resources in creation order, deleted ones included.
func (m *Manager) List() []core.Resource {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := make([]core.Resource, 0, len(m.order))
	for _, name := range m.order {
		list = append(list, m.resources[name].res)
	}
	return list
}

// Types returns the registered resource type names.
func (m *Manager) Types() []string {
	return m.registry.Types()
}

// audit records an entry in the resource history and forwards it to the sink.
// Sink failures are logged and swallowed: the state change already committed.
// Caller must hold m.mu.
func (m *Manager) audit(rec *record, name, message string) {
	rec.history = append(rec.history, audit.Entry{At: time.Now(), Message: message})

	if m.sink == nil {
		return
	}
	if err := m.sink.Append(name, message); err != nil {
		slog.Warn("audit sink append failed", "resource", name, "error", err)
	}
}
