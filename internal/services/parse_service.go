package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/errors"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
	"github.com/ElangBogopa/time-logger-sub000/internal/timeparse"
)

// parseServiceImpl implements the ParseService interface
type parseServiceImpl struct {
	maxTextLength int
	log           *logging.Logger
}

// NewParseService creates a new ParseService instance
func NewParseService(cfg *config.Config) ParseService {
	maxTextLength := 0
	if cfg != nil {
		maxTextLength = cfg.Parser.MaxTextLength
	}
	return &parseServiceImpl{
		maxTextLength: maxTextLength,
		log:           logging.Named("parser"),
	}
}

// Parse interprets activity text, resolving clock values onto the anchor's date
func (p *parseServiceImpl) Parse(ctx context.Context, text string, anchor time.Time) (*ParsedActivity, error) {
	if err := p.checkLength(text); err != nil {
		return nil, err
	}

	result := timeparse.ParseTimeFromText(text, anchor.Format("15:04"))

	parsed := &ParsedActivity{
		ParsedTime:    result,
		ResolvedStart: resolveClock(result.StartTime, anchor),
		ResolvedEnd:   resolveClock(result.EndTime, anchor),
	}

	// An end clock earlier than the start clock means the span wrapped
	// backwards over midnight ("worked 2 hours" logged at 00:30), so the
	// start belongs to the previous day.
	if parsed.ResolvedStart != nil && parsed.ResolvedEnd != nil && parsed.ResolvedEnd.Before(*parsed.ResolvedStart) {
		shifted := parsed.ResolvedStart.AddDate(0, 0, -1)
		parsed.ResolvedStart = &shifted
	}

	p.log.Debug().
		Str("text", text).
		Int("detections", len(result.Detections)).
		Bool("has_time_pattern", result.HasTimePattern).
		Msg("parsed activity text")

	return parsed, nil
}

// Detect returns the resolved time pattern detections for the text
func (p *parseServiceImpl) Detect(ctx context.Context, text string) ([]timeparse.Detection, error) {
	if err := p.checkLength(text); err != nil {
		return nil, err
	}
	return timeparse.DetectTimePatterns(text), nil
}

// Segments returns the text split into plain and highlighted runs
func (p *parseServiceImpl) Segments(ctx context.Context, text string) ([]timeparse.Segment, error) {
	if err := p.checkLength(text); err != nil {
		return nil, err
	}
	return timeparse.GetHighlightedSegments(text, timeparse.DetectTimePatterns(text)), nil
}

// checkLength rejects text above the configured maximum length
func (p *parseServiceImpl) checkLength(text string) error {
	if p.maxTextLength > 0 && len(text) > p.maxTextLength {
		return errors.NewInvalidInputError("text", len(text),
			fmt.Sprintf("must be at most %d bytes", p.maxTextLength))
	}
	return nil
}

// resolveClock pins an "HH:MM" clock value to the anchor's date and location.
func resolveClock(clock *string, anchor time.Time) *time.Time {
	if clock == nil {
		return nil
	}
	var hour, minute int
	if _, err := fmt.Sscanf(*clock, "%d:%d", &hour, &minute); err != nil {
		return nil
	}
	resolved := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, minute, 0, 0, anchor.Location())
	return &resolved
}
