package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// now is swapped in tests.
var now = time.Now

// ParseDate accepts an ISO-8601 date or date-time. Values without a zone are UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("invalid date")
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func isNotFuture(fl validator.FieldLevel) bool {
	t, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return !t.After(now())
}
