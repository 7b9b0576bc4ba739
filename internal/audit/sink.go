package audit

import "time"

// TimeFormat is the timestamp layout used in audit lines, e.g. "[10:42 AM]".
const TimeFormat = "03:04 PM"

// Entry is a single audit record for a resource.
type Entry struct {
	At      time.Time
	Message string
}

// Sink receives audit entries, scoped per resource. Implementations append
// one timestamped line per call. The manager logs sink errors and moves on;
// a sink failure never rolls back a committed lifecycle transition.
type Sink interface {
	Append(resourceName, message string) error
}
