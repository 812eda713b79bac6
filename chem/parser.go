package chem

import "math"

// tally is the running result of one group: its mass and how many atoms
// of each element it holds.
type tally struct {
	mass  float64
	atoms map[string]int
	terms int
}

func newTally() tally {
	return tally{atoms: make(map[string]int)}
}

// add folds sub into t, scaled by mult. It reports false, leaving t
// partially updated, when an atom count would overflow int.
func (t *tally) add(sub tally, mult int) bool {
	t.mass += sub.mass * float64(mult)
	for sym, n := range sub.atoms {
		scaled, ok := mulCount(n, mult)
		if !ok {
			return false
		}
		if t.atoms[sym], ok = addCount(t.atoms[sym], scaled); !ok {
			return false
		}
	}
	t.terms++

	return true
}

// mulCount and addCount combine non-negative atom counts, reporting false
// on int overflow.
func mulCount(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

func addCount(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// parser walks a token slice with a single cursor. It is owned by one
// evaluation and discarded afterwards.
type parser struct {
	formula string
	tokens  []Token
	pos     int
	depth   int
	opts    Options
}

// evaluate tokenizes and parses formula under o.
func evaluate(formula string, o Options) (tally, error) {
	tokens, err := scan(formula, o.Lenient)
	if err != nil {
		return tally{}, err
	}
	if len(tokens) == 0 && !o.Lenient {
		return tally{}, &FormulaError{Err: ErrEmptyFormula, Formula: formula}
	}

	p := &parser{formula: formula, tokens: tokens, opts: o}

	return p.parse()
}

// parse consumes the top-level group. A ')' left over at this level has no
// opening partner: strict mode rejects it, lenient mode drops the rest of
// the input.
func (p *parser) parse() (tally, error) {
	t, err := p.group()
	if err != nil {
		return tally{}, err
	}
	if p.pos < len(p.tokens) && !p.opts.Lenient {
		return tally{}, p.fail(ErrUnmatchedParenthesis, p.tokens[p.pos])
	}

	return t, nil
}

// group implements
//
//	group ::= term+
//	term  ::= ELEMENT [NUMBER] | '(' group ')' [NUMBER]
//
// It returns at end of input or in front of a ')', which it leaves for the caller.
func (p *parser) group() (tally, error) {
	t := newTally()
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Kind {
		case KindElement:
			mass, ok := p.opts.Table.Mass(tok.Symbol)
			if !ok {
				return tally{}, p.fail(ErrUnknownElement, tok)
			}
			p.pos++
			count := p.multiplier()
			n, ok := addCount(t.atoms[tok.Symbol], count)
			if !ok {
				return tally{}, p.fail(ErrMalformedFormula, p.tokens[p.pos-1])
			}
			t.mass += mass * float64(count)
			t.atoms[tok.Symbol] = n
			t.terms++

		case KindLeftParen:
			sub, err := p.nested(tok)
			if err != nil {
				return tally{}, err
			}
			if !t.add(sub, p.multiplier()) {
				return tally{}, p.fail(ErrMalformedFormula, p.tokens[p.pos-1])
			}

		case KindRightParen:
			return t, nil

		case KindNumber:
			return tally{}, p.fail(ErrUnexpectedToken, tok)

		default:
			return tally{}, p.fail(ErrInternalParse, tok)
		}
	}

	return t, nil
}

// nested parses '(' group ')' with open at the cursor and leaves the
// cursor after the ')'.
func (p *parser) nested(open Token) (tally, error) {
	if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
		return tally{}, p.fail(ErrNestingTooDeep, open)
	}
	p.pos++
	p.depth++
	sub, err := p.group()
	p.depth--
	if err != nil {
		return tally{}, err
	}
	if p.pos >= len(p.tokens) || p.tokens[p.pos].Kind != KindRightParen {
		return tally{}, p.fail(ErrUnmatchedParenthesis, open)
	}
	if sub.terms == 0 && !p.opts.Lenient {
		return tally{}, &FormulaError{
			Err:     ErrMalformedFormula,
			Formula: p.formula,
			Pos:     open.Pos,
			Text:    p.formula[open.Pos : p.tokens[p.pos].Pos+1],
		}
	}
	p.pos++

	return sub, nil
}

// multiplier consumes an optional NUMBER and returns it, or 1 if absent.
func (p *parser) multiplier() int {
	if p.pos < len(p.tokens) && p.tokens[p.pos].Kind == KindNumber {
		n := p.tokens[p.pos].Count
		p.pos++
		return n
	}

	return 1
}

func (p *parser) fail(err error, tok Token) *FormulaError {
	return &FormulaError{Err: err, Formula: p.formula, Pos: tok.Pos, Text: tok.Text}
}
