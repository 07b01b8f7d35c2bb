package report

import (
	"fmt"
	"io"
)

// ANSI color codes, matching the console logger palette.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// WriteConsole writes a colored, line-per-test rendering of the
// summary followed by aggregate counts.
func WriteConsole(w io.Writer, s *Summary) error {
	for _, o := range s.Outcomes {
		var err error
		switch o.Status {
		case StatusPassed:
			_, err = fmt.Fprintf(
				w, "%sPASS%s %s %s(%s)%s\n",
				colorGreen, colorReset, o.Name,
				colorGray, o.Duration, colorReset,
			)
		case StatusFailed:
			_, err = fmt.Fprintf(
				w, "%sFAIL%s %s: %s\n",
				colorRed, colorReset, o.Name, o.Message,
			)
		case StatusIgnored:
			_, err = fmt.Fprintf(
				w, "%sIGNORED%s %s\n",
				colorYellow, colorReset, o.Name,
			)
		}
		if err != nil {
			return fmt.Errorf(
				"failed to write outcome: %w", err,
			)
		}
	}

	for _, msg := range s.Aborted {
		if _, err := fmt.Fprintf(
			w, "%sABORTED%s %s\n",
			colorRed, colorReset, msg,
		); err != nil {
			return fmt.Errorf(
				"failed to write abort: %w", err,
			)
		}
	}

	_, err := fmt.Fprintf(
		w,
		"run %s: %d started, %d passed, %d failed, %d ignored in %s\n",
		s.RunID, s.Started, s.Passed, s.Failed, s.Ignored,
		s.Duration,
	)
	if err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}
	return nil
}
