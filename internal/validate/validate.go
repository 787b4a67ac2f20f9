// Package validate holds the pure input validators behind the curation
// prompts. Each validator maps one line of raw operator input to a value
// or a *ValidationError explaining why the input was rejected; the prompt
// loop that re-asks on failure lives with the session.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
)

// ValidationError describes rejected operator input.
// Its message is shown to the operator before the prompt is repeated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Func validates one line of raw input.
type Func[T any] func(raw string) (T, error)

// MinLength returns a validator that trims its input and requires at least
// min characters.
func MinLength(min int) Func[string] {
	return func(raw string) (string, error) {
		s := strings.TrimSpace(raw)
		if utf8.RuneCountInString(s) < min {
			return "", invalid("Please enter at least %d characters.", min)
		}
		return s, nil
	}
}

// Name validates a role model name. Besides the minimum length, the name
// must keep at least one character after sanitization so it can name a file.
func Name(raw string) (string, error) {
	s, err := MinLength(models.MinNameLen)(raw)
	if err != nil {
		return "", invalid("Please enter a valid name (minimum %d characters).", models.MinNameLen)
	}
	if models.SanitizeName(s) == "" {
		return "", invalid("Please enter a name containing letters or digits.")
	}
	return s, nil
}

// OperatorID validates the curator's roll number. It is embedded verbatim
// in record file names, so it may not contain anything SanitizeName strips.
func OperatorID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", invalid("Please enter a valid roll number.")
	}
	if models.SanitizeName(s) != s {
		return "", invalid("Roll number may not contain spaces, underscores, quotes or path characters.")
	}
	return s, nil
}

// Choice returns a validator for a 1-based pick among n items where 0 means
// "exit". It returns the chosen number unchanged.
func Choice(n int) Func[int] {
	return func(raw string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, invalid("Please enter a valid number.")
		}
		if v < 0 || v > n {
			return 0, invalid("Invalid choice. Please try again.")
		}
		return v, nil
	}
}

// Count returns a validator for an integer in [lo, hi].
func Count(lo, hi int) Func[int] {
	return func(raw string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, invalid("Please enter a valid number.")
		}
		if v < lo || v > hi {
			return 0, invalid("Please enter a number from %d to %d.", lo, hi)
		}
		return v, nil
	}
}

// Themes returns a validator for a comma-separated list of 1-based indices
// into vocabulary. It yields the selected themes in the order entered.
// Non-numeric tokens, indices out of range, repeated indices and selections
// outside [models.MinThemes, models.MaxThemes] are rejected.
func Themes(vocabulary []string) Func[[]string] {
	return func(raw string) ([]string, error) {
		parts := strings.Split(raw, ",")
		seen := make(map[int]bool, len(parts))
		selected := make([]string, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, invalid("Please enter valid numbers separated by commas.")
			}
			if n < 1 || n > len(vocabulary) {
				return nil, invalid("Invalid choice %d. Please enter theme numbers from 1 to %d.", n, len(vocabulary))
			}
			if seen[n] {
				return nil, invalid("Theme %d was selected more than once.", n)
			}
			seen[n] = true
			selected = append(selected, vocabulary[n-1])
		}
		if err := ThemeCount(len(selected)); err != nil {
			return nil, err
		}
		return selected, nil
	}
}

// ThemeCount checks the number of selected themes.
func ThemeCount(n int) error {
	if n < models.MinThemes || n > models.MaxThemes {
		return invalid("Please select between %d and %d themes.", models.MinThemes, models.MaxThemes)
	}
	return nil
}

// ThemeSet checks an already-built theme list against vocabulary, as a
// persisted record must satisfy the same rules the prompt enforced.
func ThemeSet(vocabulary, themes []string) error {
	if err := ThemeCount(len(themes)); err != nil {
		return err
	}
	seen := make(map[string]bool, len(themes))
	for _, t := range themes {
		if models.ThemeIndex(vocabulary, t) < 0 {
			return invalid("Unknown theme %q.", t)
		}
		if seen[t] {
			return invalid("Theme %q appears more than once.", t)
		}
		seen[t] = true
	}
	return nil
}

// Strategies validates a comma-separated list of coping strategies.
// Items are trimmed and empty items dropped; order is preserved.
func Strategies(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if utf8.RuneCountInString(s) < models.MinStrategiesLen {
		return nil, invalid("Please enter at least one strategy.")
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, invalid("Please enter at least one strategy.")
	}
	return items, nil
}

// Confirm reports whether raw is an affirmative answer.
func Confirm(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true
	}
	return false
}

// QuoteInSource reports whether quote occurs in source, ignoring case.
func QuoteInSource(quote, source string) bool {
	return strings.Contains(strings.ToLower(source), strings.ToLower(quote))
}
