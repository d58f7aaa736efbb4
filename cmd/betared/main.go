package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/betared/betared/pkg/lambda"
)

// demo is a named, programmatically built term. There is no surface syntax
// to parse; demos are the CLI's way of exercising the engine.
type demo struct {
	build func() lambda.Term
	about string
}

func demos() map[string]demo {
	p := lambda.NewPrelude()

	identity := lambda.F(lambda.V(0))
	k := lambda.F(lambda.F(lambda.V(0)))
	s := lambda.F(lambda.F(lambda.F(
		lambda.A(
			lambda.A(lambda.V(0), lambda.V(2)),
			lambda.A(lambda.V(1), lambda.V(2)),
		),
	)))
	omega := lambda.A(
		lambda.F(lambda.A(lambda.V(0), lambda.V(0))),
		lambda.F(lambda.A(lambda.V(0), lambda.V(0))),
	)

	return map[string]demo{
		"identity": {
			build: func() lambda.Term { return lambda.A(lambda.Clone(identity), lambda.V(5)) },
			about: "(λ.(0) 5) — identity applied to a free variable",
		},
		"skk": {
			build: func() lambda.Term {
				return lambda.A(
					lambda.A(lambda.A(lambda.Clone(s), lambda.Clone(k)), lambda.Clone(k)),
					lambda.V(10),
				)
			},
			about: "S K K applied to a free variable; reduces to the argument",
		},
		"succ-zero": {
			build: func() lambda.Term { return p.Program(p.Numeral(1)) },
			about: "binding tower computing SUCC ZERO, the church numeral one",
		},
		"add-two-two": {
			build: func() lambda.Term {
				return p.Program(lambda.A(
					lambda.A(lambda.Clone(p.Add), p.Numeral(2)), p.Numeral(2),
				))
			},
			about: "binding tower computing ADD 2 2",
		},
		"mult-two-three": {
			build: func() lambda.Term {
				return p.Program(lambda.A(
					lambda.A(lambda.Clone(p.Mult), p.Numeral(2)), p.Numeral(3),
				))
			},
			about: "binding tower computing MULT 2 3",
		},
		"omega": {
			build: func() lambda.Term { return lambda.Clone(omega) },
			about: "(λ.(0 0)) (λ.(0 0)) — never normalizes; run with a step limit",
		},
	}
}

func limits() (stepLimit, sizeLimit uint) {
	return uint(viper.GetUint64("step-limit")), uint(viper.GetUint64("size-limit"))
}

func runDemo(name string, trace bool) error {
	d, ok := demos()[name]
	if !ok {
		return fmt.Errorf("unknown demo %q (try \"betared list\")", name)
	}

	var observe lambda.StepObserver
	if trace {
		observe = func(step uint, t lambda.Term) {
			fmt.Fprintf(os.Stderr, "step %d (size %d): %s\n", step, t.Size(), t)
		}
	}

	stepLimit, sizeLimit := limits()

	start := time.Now()
	res := lambda.NormalizeObserved(d.build(), stepLimit, sizeLimit, observe)
	elapsed := time.Since(start)

	fmt.Println(res.Term)

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Steps: %d", res.Steps)
	if seconds := elapsed.Seconds(); seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f steps/sec)", float64(res.Steps)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Size peak: %d\n", res.SizePeak)

	switch {
	case res.StepExcess:
		fmt.Fprintf(os.Stderr, "Step limit hit before normal form\n")
	case res.SizeExcess:
		fmt.Fprintf(os.Stderr, "Size limit hit before normal form\n")
	default:
		fmt.Fprintf(os.Stderr, "Normal form reached (closed: %v)\n", lambda.Closed(res.Term))
	}
	return nil
}

func demoNames() []string {
	names := lo.Keys(demos())
	slices.Sort(names)
	return names
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "betared",
		Short:         "beta-reduction engine for De Bruijn level lambda terms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.Uint64("step-limit", uint64(lambda.Unbounded), "maximum number of reduction steps")
	flags.Uint64("size-limit", uint64(lambda.Unbounded), "maximum term size a reduction may produce")

	viper.SetEnvPrefix("betared")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("step-limit", flags.Lookup("step-limit"))
	_ = viper.BindPFlag("size-limit", flags.Lookup("size-limit"))

	var trace bool
	runCmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "normalize a named demo term and print its normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(args[0], trace)
		},
	}
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every intermediate term to stderr")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the available demo terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := demos()
			for _, name := range demoNames() {
				fmt.Printf("%-16s %s\n", name, all[name].about)
			}
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive loop over the demo terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl()
		},
	}

	root.AddCommand(runCmd, listCmd, replCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
