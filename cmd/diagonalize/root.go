// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eigendiag/eigen"
	"github.com/katalvlaran/eigendiag/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command with its own viper instance so that runs
// never share configuration state.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		matrixFlag string
	)
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "diagonalize [file]",
		Short: "Diagonalize a real square matrix as A = P·D·P⁻¹",
		Long: `Computes the characteristic polynomial, its real roots and the eigenspaces
of a real square matrix, then assembles P (eigenvectors as columns), D and P⁻¹.
Matrices without a full real spectrum or with a defective eigenvalue are
reported as not diagonalizable.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			log := setupLogger(cfg.logLevel, cmd.ErrOrStderr())
			if cfg.loadedFrom != "" {
				log.WithField("config", cfg.loadedFrom).Info("diagonalize: config loaded")
			}

			return run(cmd, cfg, matrixFlag, args, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Configuration file path (default ./eigendiag.yaml if present)")
	flags.StringVarP(&matrixFlag, "matrix", "m", "", `Matrix rows separated by ';', entries by ',' (e.g. "1,2;3,4")`)
	flags.Float64("tolerance", eigen.DefaultTolerance, "Root-finding and pivot tolerance")
	flags.Int("scan-steps", 0, "Grid subdivisions of the root scan interval (default from config)")
	flags.Float64("scan-min", 0, "Lower end of a fixed root scan interval")
	flags.Float64("scan-max", 0, "Upper end of a fixed root scan interval")
	flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error, fatal, panic")
	flags.Bool("steps", false, "Print the intermediate steps")

	return cmd
}

// run executes one diagonalization and writes the report to stdout.
func run(cmd *cobra.Command, cfg *Config, matrixFlag string, args []string, log logrus.FieldLogger) error {
	rows, source, err := resolveMatrix(matrixFlag, args, cfg)
	if err != nil {
		return err
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return fmt.Errorf("invalid matrix from %s: %w", source, err)
	}
	log = log.WithFields(logrus.Fields{"source": source, "n": a.Rows()})
	log.Info("diagonalize: start")

	var tr eigen.Trace
	opts := append(cfg.options(), eigen.WithLogger(log), eigen.WithTrace(&tr))
	dec, err := eigen.Diagonalize(a, opts...)

	out := cmd.OutOrStdout()
	if cfg.Steps {
		renderSteps(out, &tr)
	}

	var nd *eigen.NotDiagonalizableError
	switch {
	case errors.As(err, &nd):
		log.WithField("reason", nd.Reason.String()).Info("diagonalize: not diagonalizable")
		renderNotDiagonalizable(out, a, nd)

		return nil
	case err != nil:
		return err
	}

	log.WithField("residual", dec.Residual).Info("diagonalize: done")

	return renderDecomposition(out, a, dec)
}
