package shaderchain

import (
	"log/slog"

	"github.com/gogpu/shaderchain/hal"
)

// SetLogger configures the ambient logger shared by the orchestrator and
// every backend. See hal.SetLogger for level usage.
func SetLogger(l *slog.Logger) { hal.SetLogger(l) }

// Logger returns the current ambient logger.
func Logger() *slog.Logger { return hal.Logger() }
