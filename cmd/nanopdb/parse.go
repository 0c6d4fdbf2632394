/*
 * parse.go, part of nanopdb.
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
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func parseCmd(A *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>...",
		Short: "Read PDB files, plain, gzip or zstd compressed, and print them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				s, err := A.parser.Parse(path)
				if err != nil {
					A.log.Error("can't read file", zap.String("path", path), zap.Error(err))
					return err
				}
				if err := printStructure(cmd.OutOrStdout(), s, A.atoms); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
