package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
)

// ExportICSInput contains parameters for the ExportICS operation.
type ExportICSInput struct {
	Path string `json:"path"` // required, must end in .ics
}

// ExportICSOutput contains the result of the ExportICS operation.
type ExportICSOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// ExportICS writes the flattened hearing schedule as an iCalendar file so
// the docket can be subscribed to from an external calendar. Cancelled
// hearings are carried with STATUS:CANCELLED rather than dropped.
func ExportICS(events []docket.Event, input ExportICSInput) (*ExportICSOutput, error) {
	path, err := validateExportPath(input.Path)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//docketlab//docket//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		if e.Notes != "" {
			ve.SetDescription(e.Notes)
		}
		ve.SetStartAt(clockOnDay(e.Date, e.StartTime))
		if e.EndTime != "" {
			ve.SetEndAt(clockOnDay(e.Date, e.EndTime))
		}
		if e.Status == docket.StatusCancelled {
			ve.SetStatus(ical.ObjectStatusCancelled)
		}
	}

	// Temp file plus rename keeps any existing export intact on failure.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(cal.Serialize()), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export file: %w", err))
	}

	return &ExportICSOutput{
		Path:       path,
		Count:      len(events),
		ExportedAt: now.Unix(),
	}, nil
}

// validateExportPath rejects traversal, wrong extensions and symlink
// targets before anything touches the filesystem.
func validateExportPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.NewInvalidRequest("path is required")
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", errors.NewInvalidRequest("path must not contain directory traversal (..)")
		}
	}

	cleaned := filepath.Clean(path)
	if filepath.Ext(cleaned) != ".ics" {
		return "", errors.NewInvalidRequest("path must have .ics extension")
	}

	if info, err := os.Lstat(cleaned); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return "", errors.NewInvalidRequest("path must not be a symlink")
	}
	return cleaned, nil
}

// clockOnDay combines a calendar day with an "HH:MM" string. A malformed
// clock falls back to midnight; the export is best-effort on that axis.
func clockOnDay(day docket.Date, clock string) time.Time {
	hh, mm := 0, 0
	if h, m, ok := splitClock(clock); ok {
		hh, mm = h, m
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, time.UTC)
}

func splitClock(clock string) (int, int, bool) {
	var hh, mm int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hh, &mm); err != nil {
		return 0, 0, false
	}
	return hh, mm, true
}
