/*
 * root.go, part of nanopdb.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * nanopdb is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rmera/nanopdb"
	"github.com/rmera/nanopdb/internal/config"
	"github.com/rmera/nanopdb/internal/log"
)

//app holds what the subcommands need. It is filled in by the root
//command before any of them runs.
type app struct {
	configPath string
	logLevel   string
	atoms      bool

	conf   *config.Configuration
	log    *zap.Logger
	parser *nanopdb.Parser
}

func (A *app) flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.StringVarP(&A.configPath, "config", "c", "", "YAML config file, e.g. --config nanopdb.yaml")
	fs.StringVar(&A.logLevel, "log-level", "", "debug, info, warn or error (overrides the configuration)")
	fs.BoolVarP(&A.atoms, "atoms", "a", false, "also print the atoms of each residue")
	return fs
}

//setup loads the configuration and builds the logger and the parser.
func (A *app) setup(cmd *cobra.Command) error {
	conf, err := config.Load(A.configPath)
	if err != nil {
		return err
	}
	if A.logLevel != "" {
		conf.Log.Level = A.logLevel
		if err := conf.Validate(); err != nil {
			return err
		}
	}
	logger, err := log.NewLogger(conf.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger failed: %w", err)
	}
	A.conf = conf
	A.log = logger
	A.parser = nanopdb.NewParser(
		nanopdb.WithBaseURL(conf.Fetch.BaseURL),
		nanopdb.WithTimeout(conf.Fetch.Timeout),
		nanopdb.WithConcurrency(conf.Fetch.Concurrency),
		nanopdb.WithLogger(logger),
	)
	logger.Debug("configuration loaded",
		zap.String("base_url", conf.Fetch.BaseURL),
		zap.Duration("timeout", conf.Fetch.Timeout),
		zap.Int("concurrency", conf.Fetch.Concurrency),
	)
	return nil
}

func newRootCmd() *cobra.Command {
	A := new(app)
	cmd := &cobra.Command{
		Use:          "nanopdb",
		Short:        "Read PDB files and print their chains and residues",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return A.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if A.log != nil {
				_ = A.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().AddFlagSet(A.flags())
	cmd.AddCommand(fetchCmd(A), parseCmd(A))
	return cmd
}
