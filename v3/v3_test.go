/*
 * v3_test.go, part of structural-descriptors.
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
 */

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Wrong number of vectors: %d", A.NVecs())
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("A slice of length 4 should not build a matrix")
	}
}

func TestVecViewAliases(Te *testing.T) {
	A := Zeros(3)
	v := A.VecView(1)
	v.Set(0, 2, 7)
	if A.At(1, 2) != 7 {
		Te.Error("VecView should share storage with its source")
	}
}

func TestCrossAndNorm(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	c := Zeros(1)
	c.Cross(x, y)
	if c.At(0, 0) != 0 || c.At(0, 1) != 0 || c.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v %v %v", c.At(0, 0), c.At(0, 1), c.At(0, 2))
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if math.Abs(v.Norm(2)-5) > 1e-12 {
		Te.Errorf("Wrong norm: %f", v.Norm(2))
	}
	u := Zeros(1)
	u.Unit(v)
	if math.Abs(u.Norm(2)-1) > 1e-12 {
		Te.Error("Unit vector does not have norm 1")
	}
	if math.Abs(x.Dot(y)) > 1e-12 {
		Te.Error("Orthogonal vectors should have zero dot product")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	B := Zeros(2)
	B.SomeVecs(A, []int{2, 0})
	if B.At(0, 0) != 3 || B.At(1, 0) != 1 {
		Te.Errorf("Wrong vectors extracted: %v %v", B.At(0, 0), B.At(1, 0))
	}
	B.Scale(10, B)
	A.SetVecs(B, []int{0, 1})
	if A.At(0, 1) != 30 || A.At(1, 1) != 10 {
		Te.Error("SetVecs did not place the vectors back")
	}
}
