package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

// SpinnerSink renders deployment stages with a spinner. It writes to stderr
// so stdout only carries the deployment result.
type SpinnerSink struct {
	out     io.Writer
	spinner *spinner.Spinner

	mu     sync.Mutex
	stages []stageInfo
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// NewSpinnerSink creates a spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// NewSink picks the spinner for interactive terminals and the no-op sink
// otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || !isTerminal(os.Stderr) {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReportStage reports the current deployment stage
func (s *SpinnerSink) ReportStage(ctx context.Context, stage usecase.ExecutionStage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if n := len(s.stages); n > 0 && s.stages[n-1].Status == "running" {
		s.stages[n-1].EndTime = now
		s.stages[n-1].Status = "completed"
		if stage == usecase.StageFailed {
			s.stages[n-1].Status = "failed"
		}
	}

	switch stage {
	case usecase.StageCompleted, usecase.StageFailed:
		s.spinner.Stop()
		fmt.Fprintln(s.out, s.render())
		return
	}

	s.stages = append(s.stages, stageInfo{
		Stage:     stage,
		StartTime: now,
		Status:    "running",
	})

	s.spinner.Suffix = " " + s.render()
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Info prints an info message above the spinner
func (s *SpinnerSink) Info(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}

	color.New(color.FgCyan).Fprintln(s.out, message)

	if wasActive {
		s.spinner.Start()
	}
}

// render formats the stage trail, e.g. "✓ Resolving (2ms) → ● Deploying"
func (s *SpinnerSink) render() string {
	parts := make([]string, 0, len(s.stages))
	for _, stage := range s.stages {
		var icon string
		var stageColor *color.Color

		switch stage.Status {
		case "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case "failed":
			icon = "✗"
			stageColor = color.New(color.FgRed)
		default:
			icon = "●"
			stageColor = color.New(color.FgYellow)
		}

		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		parts = append(parts, fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage.Stage)), duration))
	}
	return strings.Join(parts, " → ")
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
