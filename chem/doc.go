// Package chem evaluates chemical formulas and provides the basic
// stoichiometry built on top of them.
//
// What
//
//   - Tokenize a formula such as "Ca(OH)2" into element, '(', ')' and number tokens.
//   - Compute molar mass (g/mol) with a recursive-descent parser over those tokens.
//   - Break a formula down into atom counts and mass percentages.
//   - Convert grams ↔ moles, apply the ideal gas law, and compute simple pH values.
//
// Grammar
//
//	group ::= term+
//	term  ::= ELEMENT [NUMBER] | '(' group ')' [NUMBER]
//
//	ELEMENT = [A-Z][a-z]?   (longest match: "Co" is cobalt, "CO" is carbon + oxygen)
//	NUMBER  = [0-9]+        (default 1 when omitted)
//
// A group's multiplier distributes over every element inside it, so
// "Mg(NO3)2" counts 1 Mg, 2 N and 6 O.
//
// Strict and lenient input
//
// By default input outside the grammar is rejected with a *FormulaError that
// names the offending text and its byte offset. WithLenient() restores the
// permissive behavior of a regex scanner: unknown characters are skipped, a
// stray top-level ')' ends parsing, and empty input weighs zero.
//
// Element table
//
// DefaultTable() holds conventional atomic weights for elements 1–118. A
// table is immutable once built; Extend and LoadTable (TOML or YAML) return
// new tables, which can be passed per call with WithTable.
//
// Concurrency
//
// Every function is pure: each call owns its tokens and cursor and only reads
// the table, so any number of goroutines may evaluate formulas at once.
//
// Complexity (n = len(formula))
//
//   - Time:   O(n)
//   - Memory: O(n) for tokens, O(depth) stack for nested groups
//
// Usage
//
//	m, err := chem.MolarMass("C6H12O6")      // 180.156
//	n, err := chem.GramsToMoles(36.03, "H2O") // ≈ 2
//
//	tbl, err := chem.LoadTable("isotopes.toml", chem.DefaultTable())
//	m, err = chem.MolarMass("D2O", chem.WithTable(tbl))
//
// Errors
//
//   - ErrUnknownElement        symbol missing from the table
//   - ErrUnmatchedParenthesis  unbalanced parentheses
//   - ErrUnexpectedToken       number with nothing to multiply, e.g. "2H"
//   - ErrMalformedFormula      characters outside the grammar, "()" (strict)
//   - ErrEmptyFormula          "" (strict)
//   - ErrNestingTooDeep        nesting beyond WithMaxDepth
//   - ErrOptionViolation       invalid Option
package chem
