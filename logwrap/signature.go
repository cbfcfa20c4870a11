package logwrap

import (
	"fmt"
)

/***** Param *****/

// Param is one declared parameter of a callable's signature: a name and,
// optionally, a default value for invocations that omit it.
type Param struct {
	name       string
	defaultVal any
	hasDefault bool
}

// P declares a parameter without a default value.
func P(name string) Param {
	return Param{name: name}
}

// D declares a parameter with a default value, used when an invocation
// does not supply the parameter.
func D(name string, defaultVal any) Param {
	return Param{name: name, defaultVal: defaultVal, hasDefault: true}
}

// Name returns the declared parameter name.
func (p Param) Name() string {
	return p.name
}

// Default returns the declared default value and whether one exists.
func (p Param) Default() (any, bool) {
	return p.defaultVal, p.hasDefault
}

/***** Args *****/

// Args holds the positional and keyword arguments of one specific invocation
// of a wrapped callable.
type Args struct {
	positional []any
	keyword    map[string]any
}

// Positional creates Args from positional values in declaration order.
func Positional(values ...any) Args {
	return Args{positional: values}
}

// NoArgs creates empty Args for callables invoked without arguments.
func NoArgs() Args {
	return Args{}
}

// WithKeyword returns a copy of the Args with one keyword argument added.
// A keyword argument takes precedence over a positional value bound to the
// same parameter name.
func (a Args) WithKeyword(name string, value any) Args {
	kw := make(map[string]any, len(a.keyword)+1)
	for k, v := range a.keyword {
		kw[k] = v
	}
	kw[name] = value

	return Args{positional: a.positional, keyword: kw}
}

// Positional returns the positional values of this invocation.
func (a Args) Positional() []any {
	return a.positional
}

// Keyword returns the keyword values of this invocation.
func (a Args) Keyword() map[string]any {
	return a.keyword
}

/***** Signature *****/

// BoundArgs is the resolved name-to-value mapping for one specific invocation.
// It is created fresh on every invocation and never persisted beyond the
// message build step.
type BoundArgs map[string]any

// Signature is the ordered parameter list of a wrapped callable, extracted
// once at decoration time. Parameter names are unique within a Signature.
type Signature struct {
	params []Param
}

// NewSignature creates a Signature from the declared parameters.
// It returns ErrEmptyParamName or ErrDuplicateParamName on invalid input.
func NewSignature(params ...Param) (Signature, error) {
	seen := make(map[string]struct{}, len(params))

	for _, param := range params {
		if param.name == "" {
			return Signature{}, ErrEmptyParamName
		}

		if _, ok := seen[param.name]; ok {
			return Signature{}, fmt.Errorf("%w: %q", ErrDuplicateParamName, param.name)
		}

		seen[param.name] = struct{}{}
	}

	return Signature{params: params}, nil
}

// Params returns the declared parameters in order.
func (s Signature) Params() []Param {
	return s.params
}

// Bind maps the supplied arguments onto the declared parameter names.
// Positional values bind in declaration order, keyword values bind by name
// and win over positional values, and omitted parameters fall back to their
// declared defaults. Parameters without a default that are not supplied are
// absent from the result; referencing them in a template surfaces later as
// a formatting error. Binding is deliberately tolerant: surplus positional
// values and unknown keyword names are ignored, since logging may happen
// before the callable's own argument validation.
func (s Signature) Bind(args Args) BoundArgs {
	bound := make(BoundArgs, len(s.params))

	for i, param := range s.params {
		switch {
		case i < len(args.positional):
			bound[param.name] = args.positional[i]
		case param.hasDefault:
			bound[param.name] = param.defaultVal
		}
	}

	for name, value := range args.keyword {
		if s.declares(name) {
			bound[name] = value
		}
	}

	return bound
}

func (s Signature) declares(name string) bool {
	for _, param := range s.params {
		if param.name == name {
			return true
		}
	}

	return false
}
