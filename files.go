/*
 * files.go, part of nanopdb.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

//Minimum line lengths for the records we read.
const (
	minHeaderLen = 66
	minCryst1Len = 54
	minAtomLen   = 54
)

//column returns line[from:to] trimmed, or the part of it that exists.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

//columnByte returns line[i], or ' ' if the line is shorter than that.
func columnByte(line string, i int) byte {
	if i >= len(line) {
		return ' '
	}
	return line[i]
}

func parseFloat(line string, from, to int, what string) (float64, error) {
	s := column(line, from, to)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("can't read %s from %q: %w", what, s, err)
	}
	return f, nil
}

func parseInt(line string, from, to int, what string) (int, error) {
	s := column(line, from, to)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("can't read %s from %q: %w", what, s, err)
	}
	return n, nil
}

//parseCharge reads charges written as "2+" or "1-". The second return value
//is false if the field is not a valid charge.
func parseCharge(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n := int(s[0] - '0')
	switch s[1] {
	case '+':
		return n, true
	case '-':
		return -n, true
	}
	return 0, false
}

//pdbReader keeps the state needed to group atoms into residues and chains while
//reading a PDB file line by line.
type pdbReader struct {
	s       *Structure
	log     *zap.Logger
	chain   *Chain
	residue *Residue
	lineNo  int
	record  string
}

func (R *pdbReader) errorf(format string, a ...interface{}) error {
	return &ParseError{Line: R.lineNo, Record: R.record, Err: fmt.Errorf(format, a...), deco: []string{"pdbReader"}}
}

func (R *pdbReader) wrap(err error) error {
	return &ParseError{Line: R.lineNo, Record: R.record, Err: err, deco: []string{"pdbReader"}}
}

func (R *pdbReader) header(line string) error {
	if len(line) < minHeaderLen {
		return R.errorf("line too short: %d columns, at least %d needed", len(line), minHeaderLen)
	}
	R.s.classification = column(line, 10, 50)
	R.s.date = column(line, 50, 59)
	R.s.id = column(line, 62, 66)
	return nil
}

func (R *pdbReader) cryst1(line string) error {
	if len(line) < minCryst1Len {
		return R.errorf("line too short: %d columns, at least %d needed", len(line), minCryst1Len)
	}
	fields := []struct {
		from, to int
		name     string
	}{
		{6, 15, "a"}, {15, 24, "b"}, {24, 33, "c"}, {33, 40, "alpha"}, {40, 47, "beta"}, {47, 54, "gamma"},
	}
	var vals [6]float64
	for i, f := range fields {
		v, err := parseFloat(line, f.from, f.to, f.name)
		if err != nil {
			return R.wrap(err)
		}
		vals[i] = v
	}
	R.s.cell = &UnitCell{A: vals[0], B: vals[1], C: vals[2], Alpha: vals[3], Beta: vals[4], Gamma: vals[5]}
	return nil
}

//atom parses a valid ATOM or HETATM line, and adds the atom to the structure, creating
//a new chain and/or residue if needed.
func (R *pdbReader) atom(line string, label Label) error {
	if len(line) < minAtomLen {
		return R.errorf("line too short: %d columns, at least %d needed", len(line), minAtomLen)
	}
	var err error
	at := Atom{Label: label, Occupancy: 1.0}
	if at.Number, err = parseInt(line, 6, 11, "serial number"); err != nil {
		return R.wrap(err)
	}
	at.Name = column(line, 12, 16)
	at.AltLoc = columnByte(line, 16)
	resName := column(line, 17, 20)
	chainID := columnByte(line, 21)
	resSeq, err := parseInt(line, 22, 26, "residue number")
	if err != nil {
		return R.wrap(err)
	}
	icode := columnByte(line, 26)
	var xyz [3]float64
	for i, c := range [3]string{"x", "y", "z"} {
		from := 30 + 8*i
		if xyz[i], err = parseFloat(line, from, from+8, c); err != nil {
			return R.wrap(err)
		}
	}
	at.Position = r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	//The following fields are optional. Short lines just don't have them.
	if column(line, 54, 60) != "" {
		if at.Occupancy, err = parseFloat(line, 54, 60, "occupancy"); err != nil {
			return R.wrap(err)
		}
	}
	if column(line, 60, 66) != "" {
		if at.BFactor, err = parseFloat(line, 60, 66, "B-factor"); err != nil {
			return R.wrap(err)
		}
	}
	at.Element = normalizeSymbol(column(line, 76, 78))
	if at.Element == "" {
		at.Element = guessElement(at.Name, resName)
	}
	at.Mass = massOf(at.Element)
	if q := column(line, 78, 80); q != "" {
		charge, ok := parseCharge(q)
		if !ok {
			R.log.Debug("ignoring unreadable charge", zap.Int("line", R.lineNo), zap.String("charge", q))
		}
		at.Charge = charge
	}

	newchain := R.chain == nil || R.chain.name != chainID
	if newchain {
		R.chain = newChain(chainID)
		R.s.addChain(R.chain)
	}
	if newchain || R.residue.number != resSeq || R.residue.icode != icode {
		R.residue = newResidue(resSeq, icode, resName)
		R.s.addResidue(R.residue)
	}
	R.s.addAtom(at)
	return nil
}

//readPDB reads the records of a PDB file from pdb and builds a Structure.
//Only HEADER, CRYST1, ATOM, HETATM, MODEL, ENDMDL and END are considered,
//everything else is skipped. Only the first model is read.
func readPDB(pdb io.Reader, log *zap.Logger) (*Structure, error) {
	R := &pdbReader{s: new(Structure), log: log}
	scanner := bufio.NewScanner(pdb)
	scanner.Buffer(make([]byte, 0, 128), 1024*1024)
	models := 0
	skipped := 0
	for scanner.Scan() {
		R.lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		R.record = column(line, 0, 6)
		var err error
		switch R.record {
		case "ATOM", "HETATM":
			if models > 1 {
				skipped++
				continue
			}
			label := LabelAtom
			if R.record == "HETATM" {
				label = LabelHetatm
			}
			err = R.atom(line, label)
		case "HEADER":
			err = R.header(line)
		case "CRYST1":
			err = R.cryst1(line)
		case "MODEL":
			models++
		case "END":
			R.s.models = models
			R.summary(skipped)
			return R.s, nil
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: R.lineNo + 1, Record: "", Err: err, deco: []string{"readPDB"}}
	}
	R.s.models = models
	R.summary(skipped)
	return R.s, nil
}

func (R *pdbReader) summary(skipped int) {
	if skipped > 0 {
		R.log.Debug("atoms from models after the first were skipped", zap.Int("models", R.s.Models()), zap.Int("atoms", skipped))
	}
	residues := 0
	for _, c := range R.s.chains {
		residues += len(c.residues)
	}
	R.log.Info("structure read",
		zap.String("pdbid", R.s.id),
		zap.Int("lines", R.lineNo),
		zap.Int("chains", len(R.s.chains)),
		zap.Int("residues", residues),
		zap.Int("atoms", R.s.NAtoms()),
	)
}
