// Package datetext parses the due date strings accepted on the command line.
//
// Explicit layouts are tried first so that "2025-06-15" always means
// midnight on that date. Anything else goes through a natural-language
// parser, so "tomorrow" and "next friday" work too.
package datetext

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnrecognized is returned when a string cannot be read as a date.
var ErrUnrecognized = errors.New("unrecognized date")

var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	time.RFC3339,
}

var parser = newParser()

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// Parse interprets text as a due date relative to base. The base's location
// is used for explicit layouts without a zone.
func Parse(text string, base time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrUnrecognized)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, text, base.Location()); err == nil {
			return t, nil
		}
	}

	result, err := parser.Parse(text, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", text, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, text)
	}
	return result.Time, nil
}
