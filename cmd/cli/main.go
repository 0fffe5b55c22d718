// Command entailer is the FOL-to-SAT entailment CLI: check whether premises
// entail a conclusion, whether two sentences are equivalent, or print a
// sentence's negation. Modeled on the teacher's REPL in shape (a thin
// wrapper over the Driver) but as cobra subcommands rather than a
// bufio.Scanner loop, since this surface is verb-and-positional-arguments
// shaped rather than conversational.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/entailer/entailer/internal/ast"
	"github.com/entailer/entailer/internal/entailment"
	"github.com/entailer/entailer/internal/folparser"
	"github.com/entailer/entailer/internal/sat"
)

// Exit codes: 0 entails/equivalent, 1 does not, 2 error.
const (
	exitYes   = 0
	exitNo    = 1
	exitError = 2
)

var (
	premises []string
	verbose  bool
	closure  bool
)

func newDriver() *entailment.Driver {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{Name: "entailer", Level: level})

	var opts []entailment.Option
	opts = append(opts, entailment.WithLogger(logger))
	if closure {
		opts = append(opts, entailment.WithExistentialClosure())
	}
	return entailment.NewDriver(folparser.New(), sat.DPLLSolver{}, opts...)
}

func main() {
	root := &cobra.Command{
		Use:   "entailer",
		Short: "Check first-order entailment by reduction to SAT",
	}
	root.PersistentFlags().StringArrayVarP(&premises, "premise", "p", nil, "a premise sentence (repeatable)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&closure, "existential-closure", false, "assert a witness for every unary class premises mention")

	check := &cobra.Command{
		Use:     "check <conclusion>",
		Aliases: []string{"impl"},
		Short:   "Check whether the --premise sentences entail <conclusion>",
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}

	equiv := &cobra.Command{
		Use:   "equiv <a> <b>",
		Short: "Check whether two sentences entail each other",
		Args:  cobra.ExactArgs(2),
		RunE:  runEquiv,
	}

	neg := &cobra.Command{
		Use:   "neg <sentence>",
		Short: "Print a sentence's negation",
		Args:  cobra.ExactArgs(1),
		RunE:  runNeg,
	}

	root.AddCommand(check, equiv, neg)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	result, err := newDriver().Entails(context.Background(), premises, args[0])
	if err != nil {
		return err
	}
	if result.Entails {
		fmt.Println("entails")
		os.Exit(exitYes)
	}
	fmt.Println("does not entail")
	printCountermodel(result.Countermodel)
	os.Exit(exitNo)
	return nil
}

func runEquiv(cmd *cobra.Command, args []string) error {
	ok, err := newDriver().AreEquivalent(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	if ok {
		fmt.Println("equivalent")
		os.Exit(exitYes)
	}
	fmt.Println("not equivalent")
	os.Exit(exitNo)
	return nil
}

func runNeg(cmd *cobra.Command, args []string) error {
	f, err := folparser.New().Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(ast.Render(entailment.Negate(f)))
	return nil
}

func printCountermodel(atoms []string) {
	if len(atoms) == 0 {
		return
	}
	fmt.Println("countermodel:")
	for _, a := range atoms {
		fmt.Println("  " + a)
	}
}
