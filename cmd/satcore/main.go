// Command satcore solves propositional-logic formulas and DIMACS CNF files,
// either as a one-shot run or as an interactive REPL reading from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hashicorp/go-hclog"

	"github.com/xDarkicex/satcore/cdcl"
	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/dimacs"
	"github.com/xDarkicex/satcore/dpll"
	"github.com/xDarkicex/satcore/expr"
)

type args struct {
	File    string `arg:"--file" help:"path to a DIMACS CNF file to solve"`
	Expr    string `arg:"--expr" help:"a propositional expression to solve, e.g. \"a and !b -> c\""`
	Solver  string `arg:"--solver" default:"cdcl" help:"solver to use: dpll or cdcl"`
	Verbose bool   `arg:"--verbose" help:"trace decisions and conflicts to stderr"`
}

func (args) Description() string {
	return "satcore solves CNF formulas with DPLL or CDCL. With no --file or --expr it reads expressions from stdin, one per line."
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "satcore",
		Output: os.Stderr,
		Level:  hclog.Warn,
	})
	if a.Verbose {
		logger.SetLevel(hclog.Trace)
	}

	switch {
	case a.File != "":
		f, err := os.Open(a.File)
		if err != nil {
			fatal(logger, err)
		}
		defer f.Close()
		c, err := dimacs.Parse(f)
		if err != nil {
			fatal(logger, err)
		}
		report(os.Stdout, solve(c, a.Solver, logger))
	case a.Expr != "":
		c, err := exprToCNF(a.Expr)
		if err != nil {
			fatal(logger, err)
		}
		report(os.Stdout, solve(c, a.Solver, logger))
	default:
		repl(os.Stdin, os.Stdout, a.Solver, logger)
	}
}

func exprToCNF(src string) (*cnf.CNF, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return nil, err
	}
	return expr.ToCNF(e), nil
}

func solve(c *cnf.CNF, solverName string, logger hclog.Logger) (cnf.Assignment, bool) {
	switch strings.ToLower(solverName) {
	case "dpll":
		return dpll.Solve(c)
	default:
		s := cdcl.NewSolver()
		s.Logger = logger
		return s.Solve(c)
	}
}

func report(w io.Writer, a cnf.Assignment, sat bool) {
	if !sat {
		fmt.Fprintln(w, "UNSAT")
		return
	}
	fmt.Fprintf(w, "SAT %s\n", a)
}

func repl(in io.Reader, out io.Writer, solverName string, logger hclog.Logger) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := exprToCNF(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		report(out, solve(c, solverName, logger))
	}
}

func fatal(logger hclog.Logger, err error) {
	logger.Error("satcore", "error", err)
	os.Exit(1)
}
