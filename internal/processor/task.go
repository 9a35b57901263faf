package processor

import (
	"time"

	"codeberg.org/snonux/htmltrans/internal/config"
)

// TaskState is the terminal outcome of a translation task
type TaskState string

const (
	TaskPending         TaskState = "PENDING"
	TaskSkippedExists   TaskState = "SKIPPED_EXISTS"
	TaskSucceeded       TaskState = "SUCCEEDED"
	TaskFailedRead      TaskState = "FAILED_READ"
	TaskFailedTranslate TaskState = "FAILED_TRANSLATE"
	TaskFailedWrite     TaskState = "FAILED_WRITE"
)

// Failed reports whether the state is one of the failure states
func (s TaskState) Failed() bool {
	switch s {
	case TaskFailedRead, TaskFailedTranslate, TaskFailedWrite:
		return true
	}
	return false
}

// Task pairs one source document with one target language
type Task struct {
	Document string
	Language config.Language
}

// TaskResult is the outcome of a single task.
// PENDING only appears in dry runs, where tasks are planned but not executed.
type TaskResult struct {
	Task       Task
	State      TaskState
	OutputPath string
	Err        error
	Duration   time.Duration
}

// Summary describes a finished sweep
type Summary struct {
	Documents   int
	Results     []TaskResult
	Invocations int
	Elapsed     time.Duration
	Interrupted bool
}

// Count returns the number of tasks that ended in state
func (s *Summary) Count(state TaskState) int {
	n := 0
	for _, r := range s.Results {
		if r.State == state {
			n++
		}
	}
	return n
}

// Failed returns the number of failed tasks
func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.State.Failed() {
			n++
		}
	}
	return n
}
