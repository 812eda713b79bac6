package chem

import (
	"strconv"
	"unicode/utf8"
)

// Tokenize splits formula into tokens in input order.
//
// Lexemes are tried longest match first: an element symbol (uppercase
// letter plus an optional lowercase letter), '(', ')', then a digit run.
// In strict mode any other character fails with ErrMalformedFormula naming
// the character and its byte offset; WithLenient() skips it instead.
func Tokenize(formula string, opts ...Option) ([]Token, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return scan(formula, o.Lenient)
}

// scan is the option-free core of Tokenize.
func scan(formula string, lenient bool) ([]Token, error) {
	tokens := make([]Token, 0, len(formula))
	for i := 0; i < len(formula); {
		c := formula[i]
		switch {
		case isUpper(c):
			end := i + 1
			if end < len(formula) && isLower(formula[end]) {
				end++
			}
			sym := formula[i:end]
			tokens = append(tokens, Token{Kind: KindElement, Symbol: sym, Pos: i, Text: sym})
			i = end

		case c == '(':
			tokens = append(tokens, Token{Kind: KindLeftParen, Pos: i, Text: "("})
			i++

		case c == ')':
			tokens = append(tokens, Token{Kind: KindRightParen, Pos: i, Text: ")"})
			i++

		case isDigit(c):
			end := i + 1
			for end < len(formula) && isDigit(formula[end]) {
				end++
			}
			text := formula[i:end]
			n, err := strconv.Atoi(text)
			if err != nil {
				return nil, &FormulaError{Err: ErrMalformedFormula, Formula: formula, Pos: i, Text: text}
			}
			tokens = append(tokens, Token{Kind: KindNumber, Count: n, Pos: i, Text: text})
			i = end

		default:
			_, size := utf8.DecodeRuneInString(formula[i:])
			if !lenient {
				return nil, &FormulaError{Err: ErrMalformedFormula, Formula: formula, Pos: i, Text: formula[i : i+size]}
			}
			i += size
		}
	}

	return tokens, nil
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
