/*
 * atomicdata.go, part of nanopdb.
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

import "strings"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"D":  2.014,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Ni": 58.69,
	"Cd": 112.41,
	"Hg": 200.59,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"PYL": 'O',
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"MSE": 'M', //selenomethionine, common in crystal structures
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HID": 'H',
	"HIE": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//normalizeSymbol turns an element symbol as written in PDB files ("FE", "c")
//into the usual capitalization ("Fe", "C").
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//symbolFromName tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
//It only deals with some common bio-elements, and returns an empty string if nothing fits.
func symbolFromName(name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	if name == "" {
		return ""
	}
	if len(name) == 4 || name[0] == 'H' { //I thiiink only Hs can have 4-char names in amber.
		return "H"
	}
	switch name {
	case "CU":
		return "Cu"
	case "CO":
		return "Co"
	case "CL":
		return "Cl"
	case "NA":
		return "Na"
	case "SE":
		return "Se"
	case "FE":
		return "Fe"
	case "MG":
		return "Mg"
	case "MN":
		return "Mn"
	case "ZN":
		return "Zn"
	case "CA": //ambiguous, but in a protein it is the alpha carbon.
		return "C"
	}
	switch name[0] {
	case 'C', 'N', 'O', 'P', 'S':
		return name[:1]
	}
	return ""
}

//massOf returns the mass of the element symbol, or 0 if unknown.
func massOf(symbol string) float64 {
	return symbolMass[symbol]
}

//guessElement is symbolFromName, except for single-atom ions, which are
//written with the element as both atom and residue name (CA/CA, HG/HG).
//Those would otherwise be read as carbon or hydrogen.
func guessElement(name, resName string) string {
	name = strings.TrimSpace(name)
	if len(name) == 2 && name == strings.TrimSpace(resName) {
		if sym := normalizeSymbol(name); massOf(sym) != 0 {
			return sym
		}
	}
	return symbolFromName(name)
}
