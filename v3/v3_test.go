/*
 * v3_test.go, part of nanopdb.
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

package v3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("NVecs: got %d, want 3", A.NVecs())
	}
	if got := A.Vec(1); got != (r3.Vec{X: 4, Y: 5, Z: 6}) {
		Te.Errorf("Vec(1): got %v", got)
	}
	a[3] = 100
	if A.At(1, 0) != 100 {
		Te.Errorf("NewMatrix should use data as backing storage")
	}
}

func TestNewMatrixErrors(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
	_, err := NewMatrix(nil)
	if err == nil {
		Te.Fatal("expected an error for an empty slice")
	}
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("unexpected error type %T", err)
	}
	if !e.Critical() {
		Te.Error("NewMatrix errors should be critical")
	}
}

func TestFromVecs(Te *testing.T) {
	vecs := []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -1, Y: -2, Z: -3}}
	M, err := FromVecs(vecs)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range vecs {
		if M.Vec(i) != v {
			Te.Errorf("row %d: got %v want %v", i, M.Vec(i), v)
		}
	}
	if _, err := FromVecs(nil); err == nil {
		Te.Error("expected an error for no vectors")
	} else if deco := err.(*Error).Decorate(""); len(deco) != 2 || deco[1] != "FromVecs" {
		Te.Errorf("unexpected decoration %v", deco)
	}
}

func TestPanics(Te *testing.T) {
	defer func() {
		if r := recover(); r != ErrIndexOutOfRange {
			Te.Errorf("expected ErrIndexOutOfRange panic, got %v", r)
		}
	}()
	M, err := NewMatrix([]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	M.Vec(1)
}
