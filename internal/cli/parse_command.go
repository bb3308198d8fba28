package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ElangBogopa/time-logger-sub000/internal/timeparse"
)

// highlight is the style used for matched time expressions.
var highlight = color.New(color.FgYellow, color.Underline)

// ParseCommand handles the parse command: a dry run showing how activity
// text would be interpreted, without storing anything.
type ParseCommand struct {
	app *App
}

// NewParseCommand creates a new parse command handler
func NewParseCommand(app *App) *ParseCommand {
	return &ParseCommand{app: app}
}

// Execute runs the parse command
func (c *ParseCommand) Execute(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")

	parsed, err := c.app.api.ParseText(ctx, text, timeNow())
	if err != nil {
		return c.app.errors.Handle("parse text", err)
	}

	segments, err := c.app.api.HighlightSegments(ctx, text)
	if err != nil {
		return c.app.errors.Handle("parse text", err)
	}

	fmt.Printf("Input:    %s\n", renderSegments(segments))

	if !parsed.HasTimePattern {
		fmt.Println("No time pattern found")
		return nil
	}

	fmt.Printf("Activity: %s\n", parsed.CleanedActivity)
	if parsed.StartTime != nil && parsed.EndTime != nil {
		fmt.Printf("Time:     %s - %s\n", *parsed.StartTime, *parsed.EndTime)
	} else if parsed.StartTime != nil {
		fmt.Printf("Time:     %s\n", *parsed.StartTime)
	} else if parsed.EndTime != nil {
		fmt.Printf("Time:     until %s\n", *parsed.EndTime)
	}

	for _, detection := range parsed.Detections {
		fmt.Printf("  %-8s %q %s\n", detection.Type, detection.MatchedText, describeDetection(detection))
	}

	return nil
}

// renderSegments colorizes the matched spans of the input text.
func renderSegments(segments []timeparse.Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		if segment.IsHighlighted {
			b.WriteString(highlight.Sprint(segment.Text))
		} else {
			b.WriteString(segment.Text)
		}
	}
	return b.String()
}

// describeDetection summarizes a detection's normalized value.
func describeDetection(d timeparse.Detection) string {
	switch d.Type {
	case timeparse.TypeDuration:
		return fmt.Sprintf("-> %d minutes", d.DurationMinutes)
	case timeparse.TypeTime:
		return "-> " + d.StartTime
	case timeparse.TypeRange:
		switch {
		case d.StartTime != "" && d.EndTime != "":
			return fmt.Sprintf("-> %s - %s", d.StartTime, d.EndTime)
		case d.EndTime != "":
			return "-> until " + d.EndTime
		default:
			return "-> from " + d.StartTime
		}
	}
	return ""
}
