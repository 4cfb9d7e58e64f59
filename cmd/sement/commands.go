// SPDX-License-Identifier: MIT
//
// File: commands.go
// Role: Subcommands: resolve, compare, prepare and signature.

package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/semalg/algebra"
	"github.com/katalvlaran/semalg/codec"
	"github.com/katalvlaran/semalg/compare"
	"github.com/katalvlaran/semalg/logger"
	"github.com/katalvlaran/semalg/resolve"
)

// =============================================================================
// RESOLVE
// =============================================================================

func newResolveCommand(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve FILE",
		Short: "Apply pending equalities and print the resolved SEMENTs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := readElements(args[0])
			if err != nil {
				return err
			}
			log := logger.FromContext(cmd.Context())
			for i, e := range elems {
				log.Debug("resolving", zap.Int("element", i), zap.Int("eqs", len(e.Eqs)))
				elems[i] = resolve.Resolve(e)
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeAll(elems, f.encodeOptions()...))

			return nil
		},
	}
}

// =============================================================================
// COMPARE
// =============================================================================

func newCompareCommand(_ *rootFlags) *cobra.Command {
	var (
		withoutProperties bool
		searchLimit       int
	)
	cmd := &cobra.Command{
		Use:   "compare GOLD ACTUAL",
		Short: "Resolve two SEMENTs and report whether they are isomorphic",
		Long: `Resolve GOLD and ACTUAL, test them for isomorphism and print the diff
of their slots, equivalence classes and handle constraints.
Exits with status 1 when they are not isomorphic.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if searchLimit <= 0 {
				return compare.ErrBadSearchLimit
			}
			gold, err := readElement(args[0])
			if err != nil {
				return err
			}
			actual, err := readElement(args[1])
			if err != nil {
				return err
			}

			opts := []compare.Option{compare.WithSearchLimit(searchLimit)}
			if withoutProperties {
				opts = append(opts, compare.WithoutProperties())
			}
			ok, report, err := compare.ResolveAndCompare(gold, actual, opts...)
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Debug("compared",
				zap.String("gold", args[0]),
				zap.String("actual", args[1]),
				zap.Bool("isomorphic", ok))

			out := cmd.OutOrStdout()
			if ok {
				fmt.Fprintln(out, "isomorphic")
			} else {
				fmt.Fprintln(out, "not isomorphic")
			}
			fmt.Fprint(out, report.String())
			if !ok {
				return errNotIsomorphic
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&withoutProperties, "without-properties", false, "ignore variable properties")
	cmd.Flags().IntVar(&searchLimit, "search-limit", compare.DefaultSearchLimit, "maximum backtracking steps")

	return cmd
}

// =============================================================================
// PREPARE
// =============================================================================

func newPrepareCommand(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare FILE",
		Short: "Prepare each SEMENT for the generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.requireConfig()
			if err != nil {
				return err
			}
			ix, err := cfg.Index()
			if err != nil {
				return err
			}
			elems, err := readElements(args[0])
			if err != nil {
				return err
			}

			opts := append(algebra.ConfigOptions(cfg), algebra.WithLogger(logger.FromContext(cmd.Context())))
			s := algebra.NewSession(ix, opts...)
			for i, e := range elems {
				if elems[i], err = s.PrepareForGeneration(e); err != nil {
					return fmt.Errorf("%s: element %d: %w", args[0], i+1, err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeAll(elems, f.encodeOptions()...))

			return nil
		},
	}
}

// =============================================================================
// SIGNATURE
// =============================================================================

func newSignatureCommand(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "signature PRED...",
		Short: "Print the SEM-I synopsis of each predicate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.requireConfig()
			if err != nil {
				return err
			}
			ix, err := cfg.Index()
			if err != nil {
				return err
			}

			var result error
			for _, pred := range args {
				sig, err := ix.Signature(pred)
				if err != nil {
					result = multierror.Append(result, fmt.Errorf("%q: %w", pred, err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), sig.String())
			}

			return result
		},
	}
}
