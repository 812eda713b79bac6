// Package chem defines tokens, options and error values for chemical
// formula evaluation.
package chem

import (
	"errors"
	"fmt"
)

// Kind tags a Token. The set is closed: the parser switches over all four
// values and treats anything else as ErrInternalParse.
type Kind uint8

const (
	// KindElement is an element symbol: one uppercase letter optionally
	// followed by one lowercase letter.
	KindElement Kind = iota

	// KindLeftParen opens a group.
	KindLeftParen

	// KindRightParen closes a group.
	KindRightParen

	// KindNumber is a run of ASCII digits (subscript or group multiplier).
	KindNumber
)

// String returns a short human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindLeftParen:
		return "'('"
	case KindRightParen:
		return "')'"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is one lexeme of a formula.
//
//   - Symbol is set for KindElement.
//   - Count is set for KindNumber (always >= 0).
//   - Pos is the byte offset of the lexeme in the formula, Text its exact spelling.
type Token struct {
	Kind   Kind
	Symbol string
	Count  int
	Pos    int
	Text   string
}

// Sentinel errors. Formula failures are reported as *FormulaError values
// that unwrap to one of these, so errors.Is works on every returned error.
var (
	// ErrEmptyFormula is returned in strict mode for a formula with no tokens.
	ErrEmptyFormula = errors.New("chem: empty formula")

	// ErrMalformedFormula is returned for characters outside the grammar,
	// out-of-range numbers, atom counts that overflow int and empty groups.
	ErrMalformedFormula = errors.New("chem: malformed formula")

	// ErrUnknownElement is returned when a symbol is absent from the element table.
	ErrUnknownElement = errors.New("chem: unknown element")

	// ErrUnmatchedParenthesis is returned for a '(' without ')' and, in
	// strict mode, for a ')' without '('.
	ErrUnmatchedParenthesis = errors.New("chem: unmatched parenthesis")

	// ErrUnexpectedToken is returned for a number that follows neither an
	// element nor a closing parenthesis.
	ErrUnexpectedToken = errors.New("chem: unexpected token")

	// ErrInternalParse is returned if the parser meets a token kind it does
	// not know. Tokenize never produces one.
	ErrInternalParse = errors.New("chem: internal parse error")

	// ErrNestingTooDeep is returned when groups nest deeper than Options.MaxDepth.
	ErrNestingTooDeep = errors.New("chem: nesting too deep")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chem: invalid option supplied")

	// ErrZeroMolarMass is returned by GramsToMoles when the formula weighs nothing.
	ErrZeroMolarMass = errors.New("chem: molar mass is zero")

	// ErrInvalidTable is returned for element tables with bad symbols or masses.
	ErrInvalidTable = errors.New("chem: invalid element table")

	// ErrNonPositivePressure is returned by IdealGasVolume for P <= 0.
	ErrNonPositivePressure = errors.New("chem: pressure must be positive")

	// ErrNonPositiveConcentration is returned by the pH helpers.
	ErrNonPositiveConcentration = errors.New("chem: concentration must be positive")
)

// FormulaError reports where in a formula evaluation failed.
type FormulaError struct {
	Err     error  // one of the sentinel errors above
	Formula string // the input being evaluated
	Pos     int    // byte offset of the offending text, or len(Formula) at end of input
	Text    string // offending substring; empty at end of input
}

// Error implements error.
func (e *FormulaError) Error() string {
	if e.Formula == "" {
		return e.Err.Error()
	}
	if e.Text == "" {
		return fmt.Sprintf("%v at end of %q", e.Err, e.Formula)
	}

	return fmt.Sprintf("%v: %q at position %d in %q", e.Err, e.Text, e.Pos, e.Formula)
}

// Unwrap returns the sentinel error.
func (e *FormulaError) Unwrap() error { return e.Err }

// DefaultMaxDepth bounds group nesting unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 64

// Option configures formula evaluation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by the operation it is passed to.
type Option func(*Options)

// Options holds the evaluation settings.
type Options struct {
	// Table resolves element symbols. Nil means DefaultTable().
	Table *ElementTable

	// Lenient reproduces the permissive scanner: characters outside the
	// grammar are skipped, a stray top-level ')' ends parsing and the rest of
	// the input is ignored, and empty input weighs zero.
	Lenient bool

	// MaxDepth limits group nesting. 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns strict evaluation against DefaultTable()
// with nesting limited to DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{
		Table:    DefaultTable(),
		Lenient:  false,
		MaxDepth: DefaultMaxDepth,
	}
}

// WithTable evaluates against t instead of the default table.
// A nil table is ignored.
func WithTable(t *ElementTable) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
		}
	}
}

// WithLenient switches to the permissive scanner and parser.
func WithLenient() Option {
	return func(o *Options) {
		o.Lenient = true
	}
}

// WithMaxDepth limits group nesting.
//
//	d > 0: at most d nested groups
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
