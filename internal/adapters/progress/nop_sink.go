package progress

import (
	"context"

	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

// ReportStage does nothing with stage updates
func (n *NopSink) ReportStage(ctx context.Context, stage usecase.ExecutionStage) {}

// Info does nothing with info messages
func (n *NopSink) Info(message string) {}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
