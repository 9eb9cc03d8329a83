// Package expr parses propositional-logic expressions and converts them to
// CNF via the Tseytin transformation, ready for dpll or cdcl to solve.
package expr
