package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileSink appends audit lines to one log file per resource under Dir,
// e.g. logs/mydb.log.
type FileSink struct {
	Dir string
}

// NewFileSink prepares the log directory.
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	return &FileSink{Dir: dir}, nil
}

// LogPath returns the log file path for a resource.
func (fs *FileSink) LogPath(resourceName string) string {
	return filepath.Join(fs.Dir, resourceName+".log")
}

// Append writes one timestamped line to the resource's log file.
func (fs *FileSink) Append(resourceName, message string) error {
	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(TimeFormat), message)

	f, err := os.OpenFile(fs.LogPath(resourceName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line)
	return err
}
