package batch

import (
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryChecker warns when system memory usage crosses the configured
// threshold between batch items, so long runs over large projects surface
// pressure before the OS does.
type MemoryChecker struct {
	warnPercent float64
	logger      zerolog.Logger
}

// NewMemoryChecker creates a checker that warns above warnPercent usage.
func NewMemoryChecker(warnPercent float64, logger zerolog.Logger) *MemoryChecker {
	return &MemoryChecker{
		warnPercent: warnPercent,
		logger:      logger.With().Str("component", "MemoryChecker").Logger(),
	}
}

// Check samples current memory usage and logs a warning above the threshold.
// Sampling failures are logged at debug level and otherwise ignored.
func (mc *MemoryChecker) Check() {
	if mc.warnPercent <= 0 {
		return
	}

	stats, err := mem.VirtualMemory()
	if err != nil {
		mc.logger.Debug().Err(err).Msg("Could not sample system memory")
		return
	}

	if stats.UsedPercent >= mc.warnPercent {
		mc.logger.Warn().
			Float64("used_percent", stats.UsedPercent).
			Float64("threshold", mc.warnPercent).
			Msg("System memory usage is high")
	}
}
