/*
 * errors.go, part of nanopdb.
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
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	//ErrIndexOutOfRange is returned when a chain, residue or atom is requested by a position
	//outside of its container.
	ErrIndexOutOfRange = errors.New("index out of range")

	//ErrInvalidID is returned by Fetch when the given identifier is not a PDB ID.
	ErrInvalidID = errors.New("invalid PDB identifier")
)

func indexError(what string, i, n int) error {
	return fmt.Errorf("%s %d requested, %d available: %w", what, i, n, ErrIndexOutOfRange)
}

//ParseError is returned when a line of a PDB file can't be read.
//Line is 1-based.
type ParseError struct {
	Line   int
	Record string
	Err    error
	deco   []string
}

func (E *ParseError) Error() string {
	return fmt.Sprintf("nanopdb: line %d (%s): %v", E.Line, E.Record, E.Err)
}

func (E *ParseError) Unwrap() error { return E.Err }

//Decorate Adds new information to the error
func (E *ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FetchError is returned when a structure can't be downloaded, or when the
//downloaded file can't be read. StatusCode is 0 unless the server answered
//with something other than 200.
type FetchError struct {
	ID         string //normalized, lower case, as used in URL
	URL        string
	StatusCode int
	Err        error
	deco       []string
}

func (E *FetchError) Error() string {
	if E.StatusCode != 0 {
		return fmt.Sprintf("nanopdb: fetch %s: %s returned %d %s", E.ID, E.URL, E.StatusCode, http.StatusText(E.StatusCode))
	}
	return fmt.Sprintf("nanopdb: fetch %s: %s", E.ID, strings.TrimPrefix(fmt.Sprint(E.Err), "nanopdb: "))
}

func (E *FetchError) Unwrap() error { return E.Err }

//Decorate Adds new information to the error
func (E *FetchError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
