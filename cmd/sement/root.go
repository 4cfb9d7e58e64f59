// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root command, persistent flags, config loading and logger setup.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/semalg/codec"
	"github.com/katalvlaran/semalg/logger"
	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/semi"
)

var (
	// errNoConfig is returned by commands that need a SEM-I when --config is unset.
	errNoConfig = errors.New("--config is required")

	// errNotIsomorphic signals a failed comparison; it maps to exit status 1.
	errNotIsomorphic = errors.New("not isomorphic")
)

// rootFlags holds the persistent flags and the state derived from them.
type rootFlags struct {
	config   string
	logLevel string
	indent   bool

	cfg *semi.Config
}

func newRootCommand() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "sement",
		Short:         "Resolve, compare and prepare SEMENTs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return f.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&f.config, "config", "c", "", "YAML config naming the grammar and SEM-I")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level; overrides the config's log_level")
	cmd.PersistentFlags().BoolVar(&f.indent, "indent", false, "print one EP per line")

	cmd.AddCommand(
		newResolveCommand(f),
		newCompareCommand(f),
		newPrepareCommand(f),
		newSignatureCommand(f),
	)

	return cmd
}

// setup loads the config, if any, and installs the logger in the command context.
func (f *rootFlags) setup(cmd *cobra.Command) error {
	if f.config != "" {
		cfg, err := semi.LoadConfig(f.config)
		if err != nil {
			return err
		}
		f.cfg = cfg
	}

	name := f.logLevel
	if name == "" && f.cfg != nil {
		name = f.cfg.LogLevel
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	log := logger.New(cmd.ErrOrStderr(), level)
	if f.cfg != nil {
		log.Debug("loaded config",
			zap.String("path", f.config),
			zap.String("semi", f.cfg.SEMIPath()),
			zap.Uint64("labeler_start", f.cfg.LabelerStart))
	}
	cmd.SetContext(logger.NewContextWithLogger(cmd.Context(), log))

	return nil
}

// requireConfig returns the loaded config or errNoConfig.
func (f *rootFlags) requireConfig() (*semi.Config, error) {
	if f.cfg == nil {
		return nil, errNoConfig
	}
	return f.cfg, nil
}

func (f *rootFlags) encodeOptions() []codec.EncodeOption {
	if f.indent {
		return []codec.EncodeOption{codec.WithIndent()}
	}
	return nil
}

// readElements decodes every SEMENT in the file at path.
func readElements(path string) ([]*sement.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	elems, err := codec.DecodeAll(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return elems, nil
}

// readElement decodes the single SEMENT in the file at path.
func readElement(path string) (*sement.Element, error) {
	elems, err := readElements(path)
	if err != nil {
		return nil, err
	}
	if len(elems) != 1 {
		return nil, fmt.Errorf("%s: want exactly one SEMENT, found %d", path, len(elems))
	}

	return elems[0], nil
}
