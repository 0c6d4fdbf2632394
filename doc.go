/*
 * doc.go, part of nanopdb.
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package nanopdb reads Protein Data Bank (PDB) files into a small, read-only, structural
data model.

A Parser fetches an entry from the RCSB by its 4-character identifier, or reads a local
file, and returns a Structure. Structures contain Chains, which contain Residues, which
contain Atoms. Every container can be accessed by position (Structure.Chain, Chain.Residue,
Residue.Atom) or iterated with range (All), and both give the elements in file order.

	p := nanopdb.NewParser()
	s, err := p.Fetch(context.Background(), "1zhy")
	if err != nil {
		log.Fatal(err)
	}
	for _, chain := range s.All() {
		for _, residue := range chain.All() {
			fmt.Println(residue)
		}
	}

**nanopdb Capabilities**

	Reads the HEADER, CRYST1, ATOM and HETATM records of PDB files. Only the first
	model of multi-model (NMR) files is kept.

	Reads plain, gzip and zstd compressed files. The compression is detected from
	the content, not from the file name.

	Downloads structures from the RCSB (or any server with the same layout),
	one at a time or concurrently.

	Gives the coordinates of a structure as a gonum-based v3.Matrix.

Writing files, geometric analyses and caching downloads are not in the scope of the library.
*/
package nanopdb
