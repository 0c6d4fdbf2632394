/*
 * chem.go, part of nanopdb.
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

package nanopdb

import (
	"fmt"
	"iter"
	"strings"

	v3 "github.com/rmera/nanopdb/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Label says whether an atom was read from an ATOM or a HETATM record.
type Label uint8

const (
	LabelAtom Label = iota
	LabelHetatm
)

func (L Label) String() string {
	if L == LabelHetatm {
		return "HETATM"
	}
	return "ATOM"
}

//Atom contains the information of one ATOM or HETATM record.
//Atoms are handed out by value, so changing one never alters the
//Structure it came from.
type Atom struct {
	Label     Label
	Number    int    //serial number in the file
	Name      string //PDB atom name, trimmed
	AltLoc    byte   //alternate location indicator, ' ' if none
	Element   string //element symbol, read from the file or guessed from the name
	Position  r3.Vec //Angstrom
	Occupancy float64
	BFactor   float64
	Charge    int
	Mass      float64 //0 if the element is unknown
}

//Het returns true if the atom came from a HETATM record.
func (A Atom) Het() bool {
	return A.Label == LabelHetatm
}

func (A Atom) String() string {
	p := A.Position
	return fmt.Sprintf("Atom { label: %q, number: %d, name: %q, element: %q, position: (%.3f, %.3f, %.3f), occupancy: %.2f }",
		A.Label.String(), A.Number, A.Name, A.Element, p.X, p.Y, p.Z, A.Occupancy)
}

/*****Residue type***/

//Residue is one monomer (aminoacid, nucleotide), ligand or water molecule.
type Residue struct {
	number int
	icode  byte
	name   string
	atoms  []Atom
}

func newResidue(number int, icode byte, name string) *Residue {
	return &Residue{number: number, icode: icode, name: name, atoms: make([]Atom, 0, 8)}
}

//Number returns the residue sequence number as written in the file.
func (R *Residue) Number() int { return R.number }

//InsertionCode returns the insertion code of the residue, ' ' if none.
func (R *Residue) InsertionCode() byte { return R.icode }

//Name returns the 3-letter residue name.
func (R *Residue) Name() string { return R.name }

//OneLetter returns the one-letter code for aminoacidic residues, or 'X'
//for anything else.
func (R *Residue) OneLetter() byte {
	if l, ok := three2OneLetter[R.name]; ok {
		return l
	}
	return 'X'
}

//Het returns true if all the atoms of the residue come from HETATM records.
func (R *Residue) Het() bool {
	for _, a := range R.atoms {
		if !a.Het() {
			return false
		}
	}
	return len(R.atoms) > 0
}

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int { return len(R.atoms) }

//Atom returns the ith atom of the residue.
func (R *Residue) Atom(i int) (Atom, error) {
	if i < 0 || i >= len(R.atoms) {
		return Atom{}, indexError("atom", i, len(R.atoms))
	}
	return R.atoms[i], nil
}

//Atoms returns a copy of all the atoms in the residue, in file order.
func (R *Residue) Atoms() []Atom {
	ret := make([]Atom, len(R.atoms))
	copy(ret, R.atoms)
	return ret
}

//All iterates over the atoms of the residue in the same order as Atom(i).
func (R *Residue) All() iter.Seq2[int, Atom] {
	return func(yield func(int, Atom) bool) {
		for i, a := range R.atoms {
			if !yield(i, a) {
				return
			}
		}
	}
}

func (R *Residue) String() string {
	if R.icode != ' ' && R.icode != 0 {
		return fmt.Sprintf("Residue { number: %d, insertion_code: '%c', name: %q }", R.number, R.icode, R.name)
	}
	return fmt.Sprintf("Residue { number: %d, name: %q }", R.number, R.name)
}

/*****Chain type***/

//Chain is an ordered set of residues sharing a chain identifier.
type Chain struct {
	name     byte
	residues []*Residue
}

func newChain(name byte) *Chain {
	return &Chain{name: name}
}

//Name returns the chain identifier.
func (C *Chain) Name() byte { return C.name }

//Len returns the number of residues in the chain.
func (C *Chain) Len() int { return len(C.residues) }

//Residue returns the ith residue of the chain.
func (C *Chain) Residue(i int) (*Residue, error) {
	if i < 0 || i >= len(C.residues) {
		return nil, indexError("residue", i, len(C.residues))
	}
	return C.residues[i], nil
}

//Residues returns the residues of the chain, in file order. The slice is a copy.
func (C *Chain) Residues() []*Residue {
	ret := make([]*Residue, len(C.residues))
	copy(ret, C.residues)
	return ret
}

//All iterates over the residues of the chain in the same order as Residue(i).
func (C *Chain) All() iter.Seq2[int, *Residue] {
	return func(yield func(int, *Residue) bool) {
		for i, r := range C.residues {
			if !yield(i, r) {
				return
			}
		}
	}
}

//Sequence returns the one-letter sequence of the polymer part of the chain.
//Residues made only of HETATM records (waters, ligands) are skipped, except
//for the ones with a known one-letter code, such as MSE.
func (C *Chain) Sequence() string {
	var b strings.Builder
	for _, r := range C.residues {
		l := r.OneLetter()
		if r.Het() && l == 'X' {
			continue
		}
		b.WriteByte(l)
	}
	return b.String()
}

func (C *Chain) String() string {
	return fmt.Sprintf("Chain { name: '%c' }", C.name)
}

/*****UnitCell type***/

//UnitCell holds the crystallographic cell from the CRYST1 record.
//Lengths are in Angstrom, angles in degrees.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

func (U UnitCell) String() string {
	return fmt.Sprintf("UnitCell { a: %.3f, b: %.3f, c: %.3f, alpha: %.2f, beta: %.2f, gamma: %.2f }",
		U.A, U.B, U.C, U.Alpha, U.Beta, U.Gamma)
}

/*****Structure type***/

//Structure is the parsed content of a PDB entry. Only the first model is kept.
type Structure struct {
	id             string
	classification string
	date           string
	cell           *UnitCell
	models         int
	chains         []*Chain
}

//ID returns the PDB ID from the HEADER record, or the fetched identifier if the
//file had no header.
func (S *Structure) ID() string { return S.id }

//Classification returns the classification from the HEADER record.
func (S *Structure) Classification() string { return S.classification }

//Date returns the deposition date from the HEADER record, as written (e.g. 26-APR-05).
func (S *Structure) Date() string { return S.date }

//UnitCell returns the CRYST1 cell, and false if the file had none.
func (S *Structure) UnitCell() (UnitCell, bool) {
	if S.cell == nil {
		return UnitCell{}, false
	}
	return *S.cell, true
}

//Models returns the number of MODEL records in the file, or 1 if there were none.
//Only the first model is read.
func (S *Structure) Models() int {
	if S.models == 0 {
		return 1
	}
	return S.models
}

//Len returns the number of chains.
func (S *Structure) Len() int { return len(S.chains) }

//Chain returns the ith chain of the structure.
func (S *Structure) Chain(i int) (*Chain, error) {
	if i < 0 || i >= len(S.chains) {
		return nil, indexError("chain", i, len(S.chains))
	}
	return S.chains[i], nil
}

//Chains returns the chains of the structure, in file order. The slice is a copy.
func (S *Structure) Chains() []*Chain {
	ret := make([]*Chain, len(S.chains))
	copy(ret, S.chains)
	return ret
}

//All iterates over the chains of the structure in the same order as Chain(i).
func (S *Structure) All() iter.Seq2[int, *Chain] {
	return func(yield func(int, *Chain) bool) {
		for i, c := range S.chains {
			if !yield(i, c) {
				return
			}
		}
	}
}

//ChainByName returns the first chain with the given identifier.
func (S *Structure) ChainByName(name byte) (*Chain, bool) {
	for _, c := range S.chains {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

//NAtoms returns the total number of atoms in the structure.
func (S *Structure) NAtoms() int {
	n := 0
	for _, c := range S.chains {
		for _, r := range c.residues {
			n += len(r.atoms)
		}
	}
	return n
}

//Atoms returns all the atoms of the structure, chain by chain and residue by residue.
func (S *Structure) Atoms() []Atom {
	ret := make([]Atom, 0, S.NAtoms())
	for _, c := range S.chains {
		for _, r := range c.residues {
			ret = append(ret, r.atoms...)
		}
	}
	return ret
}

//Coords returns a Nx3 matrix with the positions of all the atoms in the same
//order as Atoms. It returns an error if the structure has no atoms.
func (S *Structure) Coords() (*v3.Matrix, error) {
	pos := make([]r3.Vec, 0, S.NAtoms())
	for _, c := range S.chains {
		for _, r := range c.residues {
			for _, a := range r.atoms {
				pos = append(pos, a.Position)
			}
		}
	}
	M, err := v3.FromVecs(pos)
	if err != nil {
		return nil, fmt.Errorf("nanopdb: coordinates of %q: %w", S.id, err)
	}
	return M, nil
}

func (S *Structure) String() string {
	return fmt.Sprintf("Structure { pdbid: %q, classification: %q, date: %q }", S.id, S.classification, S.date)
}

//The following are only used while reading. They always act on the
//last chain and the last residue.

func (S *Structure) addChain(c *Chain) {
	S.chains = append(S.chains, c)
}

func (S *Structure) addResidue(r *Residue) {
	c := S.chains[len(S.chains)-1]
	c.residues = append(c.residues, r)
}

func (S *Structure) addAtom(a Atom) {
	c := S.chains[len(S.chains)-1]
	r := c.residues[len(c.residues)-1]
	r.atoms = append(r.atoms, a)
}
