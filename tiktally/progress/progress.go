// Package progress tracks named tasks and renders them as a terminal progress
// bar. At most one top-level operation drives the ledger at a time; nested
// calls consult Idle before opening a task of their own.
package progress

import (
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// Reporter is the capability tokenize and count operations use for visible
// progress. Implementations must tolerate updates for unknown task names.
type Reporter interface {
	// StartTask registers a named task with a total unit count. Starting an
	// already-known task is a no-op.
	StartTask(name string, total int)
	// AdvanceTask adds completed units to a task and optionally replaces its
	// displayed description. advance of 0 updates the description only.
	AdvanceTask(name string, advance int, description string)
	// FinishTask drives a task to completion.
	FinishTask(name string)
	// Idle reports whether no task is currently tracked.
	Idle() bool
}

// Nop discards all progress updates. Its Idle always reports false so callers
// never open tasks against it.
type Nop struct{}

func (Nop) StartTask(string, int)           {}
func (Nop) AdvanceTask(string, int, string) {}
func (Nop) FinishTask(string)               {}
func (Nop) Idle() bool                      { return false }

type task struct {
	id    uuid.UUID
	total int
	done  int
	bar   *progressbar.ProgressBar
}

// Ledger is a process-wide named-task ledger. It clears itself once every
// tracked task reaches completion, so a new top-level operation starts from a
// clean slate. Mutation is guarded by a mutex; traversal itself stays
// sequential, the lock only protects the shared ledger state.
type Ledger struct {
	mu    sync.Mutex
	tasks map[string]*task
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{tasks: make(map[string]*task)}
}

func (l *Ledger) StartTask(name string, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.tasks[name]; ok {
		return
	}

	t := &task{
		id:    uuid.New(),
		total: total,
		bar:   newBar(name, total),
	}
	l.tasks[name] = t

	slog.Debug("progress task started", "id", t.id, "name", name, "total", total)

	l.reapLocked()
}

func (l *Ledger) AdvanceTask(name string, advance int, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.tasks[name]
	if !ok {
		return
	}

	if description != "" {
		t.bar.Describe(description)
	}
	if advance > 0 {
		if t.done+advance > t.total {
			advance = t.total - t.done
		}
		t.done += advance
		_ = t.bar.Add(advance)
	}

	l.reapLocked()
}

func (l *Ledger) FinishTask(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.tasks[name]
	if !ok {
		return
	}

	t.done = t.total
	_ = t.bar.Finish()

	l.reapLocked()
}

func (l *Ledger) Idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) == 0
}

// reapLocked clears the ledger once every task has reached its total. Callers
// must hold the mutex.
func (l *Ledger) reapLocked() {
	for _, t := range l.tasks {
		if t.done < t.total {
			return
		}
	}
	for name, t := range l.tasks {
		_ = t.bar.Finish()
		slog.Debug("progress task finished", "id", t.id, "name", name)
		delete(l.tasks, name)
	}
}

func newBar(description string, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
}
