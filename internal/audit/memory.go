package audit

import "sync"

// MemorySink keeps appended messages in memory. Used by tests and anywhere a
// real log file is unwanted.
type MemorySink struct {
	mu      sync.Mutex
	entries map[string][]string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{
		entries: make(map[string][]string),
	}
}

func (m *MemorySink) Append(resourceName, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[resourceName] = append(m.entries[resourceName], message)
	return nil
}

// Messages returns the appended messages for a resource, oldest first.
func (m *MemorySink) Messages(resourceName string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := make([]string, len(m.entries[resourceName]))
	copy(msgs, m.entries[resourceName])
	return msgs
}
