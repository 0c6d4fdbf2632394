/*
 * example_test.go, part of nanopdb.
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

package nanopdb_test

import (
	"fmt"
	"log"
	"os"

	"github.com/rmera/nanopdb"
)

func ExampleParser_Read() {
	f, err := os.Open("testdata/1zhy_excerpt.pdb")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	s, err := nanopdb.NewParser().Read(f)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
	for _, c := range s.All() {
		fmt.Println(c, c.Sequence())
		for _, r := range c.All() {
			fmt.Println(r)
		}
	}
	// Output:
	// Structure { pdbid: "1ZHY", classification: "LIPID BINDING PROTEIN", date: "26-APR-05" }
	// Chain { name: 'A' } MSGG
	// Residue { number: 1, name: "MET" }
	// Residue { number: 2, name: "SER" }
	// Residue { number: 3, name: "GLY" }
	// Residue { number: 3, insertion_code: 'A', name: "GLY" }
	// Residue { number: 301, name: "ZN" }
	// Residue { number: 401, name: "HOH" }
	// Chain { name: 'B' } KW
	// Residue { number: 5, name: "LYS" }
	// Residue { number: 6, name: "TRP" }
	// Residue { number: 501, name: "CL" }
}

func ExampleResidue_Atoms() {
	s, err := nanopdb.NewParser().Parse("testdata/1zhy_excerpt.pdb")
	if err != nil {
		log.Fatal(err)
	}
	c, _ := s.Chain(0)
	r, _ := c.Residue(1)
	for _, a := range r.Atoms() {
		fmt.Println(a)
	}
	// Output:
	// Atom { label: "ATOM", number: 5, name: "N", element: "N", position: (13.437, 4.944, -3.940), occupancy: 1.00 }
	// Atom { label: "ATOM", number: 6, name: "CA", element: "C", position: (14.702, 4.218, -3.796), occupancy: 0.60 }
	// Atom { label: "ATOM", number: 7, name: "CA", element: "C", position: (14.710, 4.230, -3.790), occupancy: 0.40 }
}
