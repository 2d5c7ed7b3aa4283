package app

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2/data/binding"
)

const maxLogLines = 200

// logPane collects log output for display. It is an io.Writer so a slog
// handler can write to it directly.
type logPane struct {
	mu    sync.Mutex
	lines []string
	bind  binding.String
}

func newLogPane() *logPane {
	return &logPane{bind: binding.NewString()}
}

func (l *logPane) Write(p []byte) (int, error) {
	l.mu.Lock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		l.lines = append(l.lines, line)
	}
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
	text := strings.Join(l.lines, "\n")
	l.mu.Unlock()

	_ = l.bind.Set(text)
	return len(p), nil
}

// Text returns the buffered log.
func (l *logPane) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
