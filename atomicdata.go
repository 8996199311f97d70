/*
 * atomicdata.go, part of structural-descriptors.
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

package xtal

//A map for assigning mass to elements.
//Note that just elements common in inorganic solids are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Ti": 47.87,
	"V":  50.94,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ga": 69.72,
	"Ge": 72.63,
	"Se": 78.96,
	"Br": 79.904,
	"Sr": 87.62,
	"Zr": 91.22,
	"Nb": 92.91,
	"Mo": 95.95,
	"Sn": 118.71,
	"I":  126.90,
	"Ba": 137.33,
	"W":  183.84,
	"Pb": 207.2,
	"Bi": 208.98,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Ti": 1.60,
	"V":  1.53,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.50, //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Ga": 1.22,
	"Ge": 1.20,
	"Se": 1.20,
	"Br": 1.20,
	"Sr": 1.95,
	"Zr": 1.75,
	"Nb": 1.64,
	"Mo": 1.54,
	"Sn": 1.39,
	"I":  1.39,
	"Ba": 2.15,
	"W":  1.62,
	"Pb": 1.46,
	"Bi": 1.48,
}

//A map for assigning Pauling electronegativities to elements.
var symbolElectroneg = map[string]float64{
	"H":  2.20,
	"Li": 0.98,
	"Be": 1.57,
	"B":  2.04,
	"C":  2.55,
	"N":  3.04,
	"O":  3.44,
	"F":  3.98,
	"Na": 0.93,
	"Mg": 1.31,
	"Al": 1.61,
	"Si": 1.90,
	"P":  2.19,
	"S":  2.58,
	"Cl": 3.16,
	"K":  0.82,
	"Ca": 1.00,
	"Ti": 1.54,
	"V":  1.63,
	"Cr": 1.66,
	"Mn": 1.55,
	"Fe": 1.83,
	"Co": 1.88,
	"Ni": 1.91,
	"Cu": 1.90,
	"Zn": 1.65,
	"Ga": 1.81,
	"Ge": 2.01,
	"Se": 2.55,
	"Br": 2.96,
	"Sr": 0.95,
	"Zr": 1.33,
	"Nb": 1.60,
	"Mo": 2.16,
	"Sn": 1.96,
	"I":  2.66,
	"Ba": 0.89,
	"W":  2.36,
	"Pb": 2.33,
	"Bi": 2.02,
}

//The elements regarded as anions when partitioning a structure into
//cation-centered polyhedra. The set corresponds to the species list
//O2-/O, F-/F, Cl-/Cl, Br-/Br, I-/I and S2-/S, charge labels stripped.
var symbolAnion = map[string]bool{
	"O":  true,
	"F":  true,
	"Cl": true,
	"Br": true,
	"I":  true,
	"S":  true,
}

//AtomicMass returns the mass for the given element symbol, or an error
//if the element is not tabulated.
func AtomicMass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, CError{msg: "Mass not tabulated for element: " + symbol, deco: []string{"AtomicMass"}}
	}
	return m, nil
}

//CovalentRadius returns the covalent radius for the given element
//symbol, or an error if the element is not tabulated.
func CovalentRadius(symbol string) (float64, error) {
	r, ok := symbolCovrad[symbol]
	if !ok {
		return 0, CError{msg: "Covalent radius not tabulated for element: " + symbol, deco: []string{"CovalentRadius"}}
	}
	return r, nil
}

//Electronegativity returns the Pauling electronegativity for the given
//element symbol, or an error if the element is not tabulated.
func Electronegativity(symbol string) (float64, error) {
	e, ok := symbolElectroneg[symbol]
	if !ok {
		return 0, CError{msg: "Electronegativity not tabulated for element: " + symbol, deco: []string{"Electronegativity"}}
	}
	return e, nil
}

//IsAnion returns whether the given element symbol belongs to the set of
//peripheral-ion (anion) elements used for polyhedron building.
func IsAnion(symbol string) bool {
	return symbolAnion[symbol]
}
