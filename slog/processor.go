package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ltxtoc"
)

// Ensure LoggingProcessor implements ltxtoc.Processor.
var _ ltxtoc.Processor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a Processor with debug logging.
type LoggingProcessor struct {
	next   ltxtoc.Processor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next ltxtoc.Processor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs heading counts.
func (p *LoggingProcessor) Process(html string) (res *ltxtoc.Result) {
	defer func(begin time.Time) {
		if res == nil {
			p.logger.Warn("process", "bytes", len(html), "result", "nil", "duration", time.Since(begin))
			return
		}
		p.logger.Info("process",
			"bytes", len(html),
			"headings", res.Assigned+res.Skipped,
			"assigned", res.Assigned,
			"skipped", res.Skipped,
			"entries", len(res.Entries),
			"duration", time.Since(begin),
		)
		for _, e := range res.Entries {
			p.logger.Debug("toc entry", "level", e.Level, "id", e.ID, "text", e.Text)
		}
	}(time.Now())
	return p.next.Process(html)
}
