package activation

import (
	"strconv"
	"strings"

	"github.com/vencik-go/libnn/errs"
)

// formatNum renders f with the shortest round-tripping decimal
// representation, matching the style topotext files use for literals.
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseLiteral parses a topotext activation literal ("identity" or
// "logistic(<x0>,<L>,<k>)") into a concrete Activation. It fails with
// errs.ErrParse if the literal's shape or numeric parameters are invalid.
func ParseLiteral(literal string) (Activation, error) {
	const method = "activation.ParseLiteral"

	literal = strings.TrimSpace(literal)
	if literal == "identity" {
		return Identity{}, nil
	}

	if !strings.HasPrefix(literal, "logistic(") || !strings.HasSuffix(literal, ")") {
		return nil, errs.Wrapf(errs.ErrParse, method, "unrecognised activation literal %q", literal)
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(literal, "logistic("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return nil, errs.Wrapf(errs.ErrParse, method, "logistic(...) requires 3 parameters, got %d", len(parts))
	}

	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errs.Wrapf(errs.ErrParse, method, "parameter %d (%q) is not numeric: %v", i, p, err)
		}
		vals[i] = v
	}

	return Logistic{X0: vals[0], L: vals[1], K: vals[2]}, nil
}

// VerifyLiteral parses literal and checks the result matches want's
// dynamic type and field values — deserialisation verifies the parsed
// parameters match the expected ones rather than silently accepting a
// mismatch. It returns errs.ErrParse on any mismatch.
func VerifyLiteral(literal string, want Activation) error {
	const method = "activation.VerifyLiteral"

	got, err := ParseLiteral(literal)
	if err != nil {
		return err
	}

	switch w := want.(type) {
	case Identity:
		if _, ok := got.(Identity); !ok {
			return errs.Wrapf(errs.ErrParse, method, "expected identity, got %T", got)
		}
	case Logistic:
		g, ok := got.(Logistic)
		if !ok {
			return errs.Wrapf(errs.ErrParse, method, "expected logistic, got %T", got)
		}
		if g != w {
			return errs.Wrapf(errs.ErrParse, method, "logistic parameters mismatch: parsed %+v, want %+v", g, w)
		}
	default:
		return errs.Wrapf(errs.ErrParse, method, "unsupported activation type %T", want)
	}

	return nil
}
