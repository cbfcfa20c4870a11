package logwrap

import (
	"errors"
)

var ErrEmptyParamName = errors.New("empty parameter name supplied")
var ErrDuplicateParamName = errors.New("duplicate parameter name supplied")
var ErrEmptyTemplate = errors.New("empty message template supplied")
var ErrUnbalancedPlaceholder = errors.New("unbalanced placeholder braces in message template")
var ErrEmptyPlaceholderName = errors.New("empty placeholder name in message template")
var ErrUnknownFormatSpec = errors.New("unknown format specifier in message template")
var ErrUnknownFormatVariable = errors.New("message template references an undefined variable")
var ErrIncompatibleFormatSpec = errors.New("format specifier is incompatible with the bound value")
var ErrEmptyFormatVariable = errors.New("empty format variable name supplied")
var ErrEmptyLoggerName = errors.New("empty logger name supplied")
