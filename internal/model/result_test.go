package model

import (
	"errors"
	"testing"
	"time"
)

// newTestResult creates a build result with a representative task mix.
func newTestResult() *BuildResult {
	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &BuildResult{
		Project:     "libwidget",
		ToolVersion: "2.4.1",
		StartedAt:   started,
		FinishedAt:  started.Add(90 * time.Second),
		Tasks: []TaskResult{
			{Name: "compile", Status: StatusSuccess, Duration: 40 * time.Second},
			{Name: "test:unit", Status: StatusFailed, Duration: 30 * time.Second, Error: "2 assertions failed"},
			{Name: "docs", Status: StatusSkipped},
		},
	}
}

// TestBuildResultSummary tests aggregation over task outcomes.
func TestBuildResultSummary(t *testing.T) {
	t.Parallel()

	s := newTestResult().Summary()
	if s.Total != 3 {
		t.Errorf("expected 3 tasks, got %d", s.Total)
	}
	if s.Succeeded != 1 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.TaskDuration != 70*time.Second {
		t.Errorf("expected 70s task duration, got %s", s.TaskDuration)
	}
}

// TestBuildResultFailed tests failure detection.
func TestBuildResultFailed(t *testing.T) {
	t.Parallel()

	result := newTestResult()
	if !result.Failed() {
		t.Error("expected build with a failed task to be failed")
	}

	result.Tasks[1].Status = StatusSuccess
	if result.Failed() {
		t.Error("expected build without failed tasks to not be failed")
	}
}

// TestBuildResultFailedTasks tests failed-task extraction order.
func TestBuildResultFailedTasks(t *testing.T) {
	t.Parallel()

	failed := newTestResult().FailedTasks()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed task, got %d", len(failed))
	}
	if failed[0].Name != "test:unit" {
		t.Errorf("expected test:unit, got %q", failed[0].Name)
	}
}

// TestBuildResultDuration tests wall-clock duration.
func TestBuildResultDuration(t *testing.T) {
	t.Parallel()

	if got := newTestResult().Duration(); got != 90*time.Second {
		t.Errorf("expected 90s, got %s", got)
	}
}

// TestBuildResultValidate tests structural validation.
func TestBuildResultValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*BuildResult)
		wantErr error
	}{
		{
			name:    "valid result passes",
			mutate:  func(*BuildResult) {},
			wantErr: nil,
		},
		{
			name:    "missing project name",
			mutate:  func(b *BuildResult) { b.Project = "" },
			wantErr: ErrNoProject,
		},
		{
			name: "finished before started",
			mutate: func(b *BuildResult) {
				b.FinishedAt = b.StartedAt.Add(-time.Minute)
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "empty task name",
			mutate:  func(b *BuildResult) { b.Tasks[0].Name = "" },
			wantErr: ErrEmptyTaskName,
		},
		{
			name:    "duplicate task name",
			mutate:  func(b *BuildResult) { b.Tasks[2].Name = "compile" },
			wantErr: ErrDuplicateTaskName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := newTestResult()
			tt.mutate(result)

			err := result.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
