// Package cnf holds the data model shared by the dpll and cdcl solvers:
// variables, literals, clauses, the bucketed clause database, and the
// evaluator used to check candidate assignments.
package cnf
