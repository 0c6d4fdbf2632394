/*
 * print.go, part of nanopdb.
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
	"bufio"
	"fmt"
	"io"

	"github.com/rmera/nanopdb"
)

//printStructure writes the structure, then one line per chain and one per
//residue, indented. With atoms, each atom of the residue follows it.
func printStructure(w io.Writer, s *nanopdb.Structure, atoms bool) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, s)
	for _, c := range s.All() {
		fmt.Fprintf(b, "  %s\n", c)
		for _, r := range c.All() {
			fmt.Fprintf(b, "    %s\n", r)
			if !atoms {
				continue
			}
			for _, a := range r.All() {
				fmt.Fprintf(b, "      %s\n", a)
			}
		}
	}
	return b.Flush()
}
