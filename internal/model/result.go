package model

import (
	"fmt"
	"time"
)

// TaskResult is the outcome of one build task.
type TaskResult struct {
	// Name is the task identifier (e.g. "compile", "test:unit").
	// Names are unique within a build.
	Name string `json:"name" yaml:"name"`

	// Status is the task outcome.
	Status Status `json:"status" yaml:"status"`

	// Duration is how long the task ran.
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`

	// Error is the failure message for failed tasks, empty otherwise.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Output holds captured output lines worth surfacing in reports
	// (warnings, failure context). Full logs stay with the build tool.
	Output []string `json:"output,omitempty" yaml:"output,omitempty"`
}

// BuildResult is the full outcome of a build run, parsed from the results
// file the build tool emits.
type BuildResult struct {
	// Project is the name of the built project.
	Project string `json:"project" yaml:"project"`

	// ToolVersion is the version of the build tool that produced the
	// results, recorded for traceability in rendered reports.
	ToolVersion string `json:"tool_version,omitempty" yaml:"tool_version,omitempty"`

	// StartedAt is when the build began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// FinishedAt is when the build completed.
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// Tasks holds per-task outcomes in execution order.
	Tasks []TaskResult `json:"tasks" yaml:"tasks"`
}

// Summary aggregates task outcomes for report headers.
type Summary struct {
	// Total is the number of tasks in the build.
	Total int `json:"total" yaml:"total"`

	// Succeeded, Failed, and Skipped count tasks per status.
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`
	Skipped   int `json:"skipped" yaml:"skipped"`

	// TaskDuration is the sum of all task durations. It can exceed the
	// wall-clock build duration when tasks ran in parallel.
	TaskDuration time.Duration `json:"task_duration_ns" yaml:"task_duration_ns"`
}

// Summary computes aggregate counts over the build's tasks.
func (b *BuildResult) Summary() Summary {
	var s Summary
	s.Total = len(b.Tasks)
	for _, task := range b.Tasks {
		s.TaskDuration += task.Duration
		switch task.Status {
		case StatusSuccess:
			s.Succeeded++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// Failed reports whether any task in the build failed.
func (b *BuildResult) Failed() bool {
	for _, task := range b.Tasks {
		if task.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Duration returns the wall-clock duration of the build.
func (b *BuildResult) Duration() time.Duration {
	return b.FinishedAt.Sub(b.StartedAt)
}

// FailedTasks returns the tasks that failed, in execution order.
func (b *BuildResult) FailedTasks() []TaskResult {
	var failed []TaskResult
	for _, task := range b.Tasks {
		if task.Status == StatusFailed {
			failed = append(failed, task)
		}
	}
	return failed
}

// Validate checks structural invariants of a parsed build result.
// It returns the first problem found; fixing one problem often makes
// later ones irrelevant.
func (b *BuildResult) Validate() error {
	if b.Project == "" {
		return ErrNoProject
	}

	if !b.FinishedAt.IsZero() && b.FinishedAt.Before(b.StartedAt) {
		return fmt.Errorf("%w: started %s, finished %s",
			ErrInvalidTimeRange, b.StartedAt.Format(time.RFC3339), b.FinishedAt.Format(time.RFC3339))
	}

	seen := make(map[string]bool, len(b.Tasks))
	for i, task := range b.Tasks {
		if task.Name == "" {
			return fmt.Errorf("%w: task index %d", ErrEmptyTaskName, i)
		}
		if seen[task.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateTaskName, task.Name)
		}
		seen[task.Name] = true
	}
	return nil
}
