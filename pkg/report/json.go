package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf(
			"failed to write summary: %w", err,
		)
	}
	return nil
}
