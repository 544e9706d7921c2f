// Package durationfmt renders elapsed game time for display.
package durationfmt

import (
	"fmt"
	"time"
)

// Style selects one of the display layouts
type Style int

const (
	// Timer is the running clock shown on the board: m:ss up to one hour, then h:mm:ss.
	Timer Style = iota
	// Details is used in the level summary: raw seconds under a minute,
	// m:ss under an hour, h:mm:ss beyond.
	Details
)

// Formatter converts a duration into a display string
type Formatter interface {
	Format(d time.Duration, style Style) string
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc func(d time.Duration, style Style) string

// Format implements Formatter
func (f FormatterFunc) Format(d time.Duration, style Style) string {
	return f(d, style)
}

// Live returns the formatter used in production
func Live() Formatter {
	return FormatterFunc(format)
}

// Seconds returns a formatter that always prints whole seconds, regardless of style
func Seconds() Formatter {
	return FormatterFunc(func(d time.Duration, _ Style) string {
		return fmt.Sprintf("%d", wholeSeconds(d))
	})
}

func format(d time.Duration, style Style) string {
	total := wholeSeconds(d)
	h, m, s := total/3600, (total%3600)/60, total%60

	switch style {
	case Details:
		switch {
		case total < 60:
			return fmt.Sprintf("%d", total)
		case total < 3600:
			return fmt.Sprintf("%d:%02d", m, s)
		}
	default:
		if total <= 3600 {
			return fmt.Sprintf("%d:%02d", total/60, s)
		}
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func wholeSeconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
