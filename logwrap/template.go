package logwrap

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Format specifiers supported in placeholders, e.g. {count:d}.
const (
	specDefault = ""  // fmt %v rendering
	specValue   = "v" // explicit %v rendering
	specString  = "s" // strings, fmt.Stringer and error values
	specInt     = "d" // integer values
	specFloat   = "f" // integer and floating point values
	specQuoted  = "q" // quoted string rendering
	specRepr    = "r" // Go-syntax representation (%#v)
	specJSON    = "j" // JSON rendering
)

// FormatError reports that a message template could not be rendered for one
// specific invocation: either a placeholder references a variable absent from
// the combined mapping, or its format specifier is incompatible with the
// bound value. It unwraps to ErrUnknownFormatVariable or
// ErrIncompatibleFormatSpec.
type FormatError struct {
	Template string
	Variable string
	Spec     string
	reason   error
}

func (e *FormatError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("formatting %q: %s: {%s:%s}", e.Template, e.reason, e.Variable, e.Spec)
	}

	return fmt.Sprintf("formatting %q: %s: {%s}", e.Template, e.reason, e.Variable)
}

func (e *FormatError) Unwrap() error {
	return e.reason
}

// segment is either a literal run of text or a single named placeholder.
type segment struct {
	literal string
	name    string
	spec    string
}

// Template is a parsed message template with named placeholders.
//
// Placeholders have the form {name} or {name:spec} where spec is one of
// s, d, f, q, v, r, j. Literal braces are written as {{ and }}.
// A Template is parsed once at decoration time and reused across
// invocations; it is safe for concurrent use.
type Template struct {
	raw      string
	segments []segment
}

// ParseTemplate parses a message template, validating placeholder syntax and
// format specifiers. Referenced variable names are not validated here; an
// unknown name surfaces as a *FormatError when the template is rendered.
func ParseTemplate(raw string) (*Template, error) {
	if raw == "" {
		return nil, ErrEmptyTemplate
	}

	t := &Template{raw: raw}
	var literal strings.Builder

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(raw[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnbalancedPlaceholder, raw)
			}

			name, spec, err := parsePlaceholder(raw[i+1 : i+end])
			if err != nil {
				return nil, err
			}

			t.flushLiteral(&literal)
			t.segments = append(t.segments, segment{name: name, spec: spec})
			i += end

		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}

			return nil, fmt.Errorf("%w: %q", ErrUnbalancedPlaceholder, raw)

		default:
			literal.WriteByte(raw[i])
		}
	}

	t.flushLiteral(&literal)

	return t, nil
}

func (t *Template) flushLiteral(literal *strings.Builder) {
	if literal.Len() > 0 {
		t.segments = append(t.segments, segment{literal: literal.String()})
		literal.Reset()
	}
}

func parsePlaceholder(body string) (name string, spec string, err error) {
	name = body
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		name, spec = body[:colon], body[colon+1:]
	}

	if name == "" {
		return "", "", fmt.Errorf("%w: %q", ErrEmptyPlaceholderName, body)
	}

	switch spec {
	case specDefault, specValue, specString, specInt, specFloat, specQuoted, specRepr, specJSON:
		return name, spec, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownFormatSpec, spec)
	}
}

// Raw returns the unparsed template text.
func (t *Template) Raw() string {
	return t.raw
}

// VariableNames returns the distinct placeholder names in order of first use.
func (t *Template) VariableNames() []string {
	var names []string
	seen := make(map[string]struct{})

	for _, seg := range t.segments {
		if seg.name == "" {
			continue
		}

		if _, ok := seen[seg.name]; !ok {
			seen[seg.name] = struct{}{}
			names = append(names, seg.name)
		}
	}

	return names
}

// Format renders the template by substituting every placeholder with the
// corresponding value from vars. It returns a *FormatError when a placeholder
// references a name absent from vars or when a format specifier is
// incompatible with the bound value.
func (t *Template) Format(vars BoundArgs) (string, error) {
	var out strings.Builder
	out.Grow(len(t.raw))

	for _, seg := range t.segments {
		if seg.name == "" {
			out.WriteString(seg.literal)
			continue
		}

		value, ok := vars[seg.name]
		if !ok {
			return "", &FormatError{Template: t.raw, Variable: seg.name, Spec: seg.spec, reason: ErrUnknownFormatVariable}
		}

		rendered, err := renderValue(value, seg.spec)
		if err != nil {
			return "", &FormatError{Template: t.raw, Variable: seg.name, Spec: seg.spec, reason: err}
		}

		out.WriteString(rendered)
	}

	return out.String(), nil
}

func renderValue(value any, spec string) (string, error) {
	switch spec {
	case specDefault, specValue:
		return fmt.Sprintf("%v", value), nil

	case specString:
		switch v := value.(type) {
		case string:
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		case error:
			return v.Error(), nil
		default:
			return "", ErrIncompatibleFormatSpec
		}

	case specInt:
		if !isInteger(value) {
			return "", ErrIncompatibleFormatSpec
		}
		return fmt.Sprintf("%d", value), nil

	case specFloat:
		f, ok := asFloat(value)
		if !ok {
			return "", ErrIncompatibleFormatSpec
		}
		return fmt.Sprintf("%f", f), nil

	case specQuoted:
		switch v := value.(type) {
		case string:
			return fmt.Sprintf("%q", v), nil
		case fmt.Stringer:
			return fmt.Sprintf("%q", v.String()), nil
		case error:
			return fmt.Sprintf("%q", v.Error()), nil
		default:
			return "", ErrIncompatibleFormatSpec
		}

	case specRepr:
		return fmt.Sprintf("%#v", value), nil

	case specJSON:
		rendered, err := jsoniter.ConfigFastest.MarshalToString(value)
		if err != nil {
			return "", ErrIncompatibleFormatSpec
		}
		return rendered, nil

	default:
		return "", ErrUnknownFormatSpec
	}
}

func isInteger(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
