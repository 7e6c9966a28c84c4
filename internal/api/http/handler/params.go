package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plushealth/plushealth-server/internal/model"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", model.ErrValidation)
	}
	return id, nil
}

// parseDate parses a calendar date. An empty string parses to the zero time
// so the service layer reports the missing field.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", model.ErrValidation)
	}
	return d, nil
}
