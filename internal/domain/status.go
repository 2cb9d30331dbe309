package domain

import (
	"encoding/json"
	"fmt"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// legacyStatuses maps the older merchant-management vocabulary onto the
// unified one so responses from either backend variant parse.
var legacyStatuses = map[string]Status{
	"confirmed": StatusAccepted,
	"ready":     StatusPreparing,
}

// ParseStatus normalizes a wire status string. Legacy names are folded into
// the unified vocabulary; unknown values are rejected.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusAccepted, StatusPreparing, StatusCompleted, StatusCancelled:
		return s, nil
	}
	if s, ok := legacyStatuses[raw]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// UnmarshalJSON folds legacy names into the unified vocabulary at the wire
// boundary, so the rest of the code only ever sees the closed enum.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusPreparing:
		return "Preparing"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Color returns the display color used by both dashboards.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "#ffc107"
	case StatusAccepted:
		return "#2196F3"
	case StatusPreparing:
		return "#4CAF50"
	case StatusCompleted:
		return "#9E9E9E"
	case StatusCancelled:
		return "#f44336"
	}
	return "#000000"
}

// Priority orders statuses for display; actionable orders sort first.
func (s Status) Priority() int {
	switch s {
	case StatusPending:
		return 0
	case StatusAccepted:
		return 1
	case StatusPreparing:
		return 2
	case StatusCompleted:
		return 3
	case StatusCancelled:
		return 4
	}
	return 5
}
