package cnf

// Variable is an opaque propositional variable name. Equality is plain
// string equality, so a Variable is safe to use as a map key directly.
type Variable string
