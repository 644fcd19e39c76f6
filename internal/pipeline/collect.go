// Package pipeline wires the estimator together: it collects and validates
// raw input, evaluates the formulas and hands the presenter a plan of what
// to show.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenergia/solarcalc/internal/model"
)

// InputError reports a rejected amount. Notice is the message shown to the
// user; the error unwraps to model.ErrInvalidAmount.
type InputError struct {
	Raw    string
	Min    float64
	Notice string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid amount %q (minimum %.0f)", e.Raw, e.Min)
}

func (e *InputError) Unwrap() error {
	return model.ErrInvalidAmount
}

// NoticeFor returns the user-visible message for err, or err's text when it
// is not an InputError.
func NoticeFor(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Notice
	}
	return err.Error()
}

// ParseAmount reads a monetary amount typed by the user. It accepts an
// optional "R$" prefix and a comma decimal separator, and rejects anything
// non-numeric, non-positive or below min.
func ParseAmount(raw string, min float64) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		// "1.234,56" -> "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v < min {
		return 0, &InputError{
			Raw:    raw,
			Min:    min,
			Notice: fmt.Sprintf("Por favor, insira um valor válido (mínimo R$ %.0f)", min),
		}
	}
	return v, nil
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
