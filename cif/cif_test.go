package cif

import (
	"math"
	"os"
	"strings"
	"testing"

	xtal "github.com/medgbb/structural-descriptors-repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNaCl(t *testing.T) {
	f, err := os.Open("../test/NaCl.cif")
	require.NoError(t, err)
	defer f.Close()
	blocks, err := Read(f)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	b := blocks[0]
	assert.Equal(t, "NaCl", b.Name)
	assert.Len(t, b.Loops, 2)

	a, err := b.Float("_cell_length_a")
	require.NoError(t, err)
	assert.InDelta(t, 5.6402, a, 1e-12) //the (2) uncertainty is stripped
	vol, err := b.Float("_cell_volume")
	require.NoError(t, err)
	assert.InDelta(t, 179.43, vol, 1e-12)
	z, err := b.Int("_cell_formula_units_Z")
	require.NoError(t, err)
	assert.Equal(t, 4, z)
	//tags are case-insensitive
	n, err := b.Int("_symmetry_int_tables_number")
	require.NoError(t, err)
	assert.Equal(t, 225, n)
	sg, err := b.Str("_symmetry_space_group_name_H-M")
	require.NoError(t, err)
	assert.Equal(t, "F m -3 m", sg)
	name, err := b.Str("_chemical_name_mineral")
	require.NoError(t, err)
	assert.Equal(t, "Halite", name)

	symloop := b.Loop("_symmetry_equiv_pos_as_xyz")
	require.NotNil(t, symloop)
	assert.Len(t, symloop.Rows, 8)
	//quoted operations come out unquoted and whole
	col := symloop.Column("_symmetry_equiv_pos_as_xyz")
	require.GreaterOrEqual(t, col, 0)
	assert.Equal(t, "x, y, z", symloop.Rows[0][col])

	sites := b.Loop("_atom_site_fract_x")
	require.NotNil(t, sites)
	assert.Len(t, sites.Tags, 9)
	require.Len(t, sites.Rows, 2)
	occ := sites.Column("_atom_site_occupancy")
	require.GreaterOrEqual(t, occ, 0)
	for _, row := range sites.Rows {
		assert.Equal(t, "1.0000", row[occ])
	}
	assert.Equal(t, "Cl1-", sites.Rows[0][sites.Column("_atom_site_type_symbol")])
	assert.Equal(t, "Na1", sites.Rows[1][sites.Column("_atom_site_label")])
	assert.Nil(t, b.Loop("_no_such_tag"))
}

func TestReadInvariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"duplicated tag", "data_x\n_cell_length_a 1\n_cell_length_a 2\n"},
		{"stray value", "data_x\n_cell_length_a 1\nrogue\n"},
		{"tag without value", "data_x\n_cell_length_a\n"},
		{"ragged loop", "data_x\nloop_\n_a\n_b\n1 2 3\n"},
		{"empty loop header", "data_x\nloop_\n1 2\n"},
		{"unterminated quote", "data_x\n_name 'no end\n"},
		{"unterminated text field", "data_x\n_name\n;\nsome text\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(c.in))
			assert.Error(t, err)
		})
	}
}

func TestQuotingRules(t *testing.T) {
	//per CIF 1.1 a quote only closes when followed by whitespace
	in := "data_q\n_name 'O'Keeffe's site'\n_note \"it's \"fine\"\"\n"
	blocks, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	b := blocks[0]
	v, err := b.Str("_name")
	require.NoError(t, err)
	assert.Equal(t, "O'Keeffe's site", v)
	v, err = b.Str("_note")
	require.NoError(t, err)
	assert.Equal(t, "it's \"fine\"", v)
}

func TestTextField(t *testing.T) {
	in := "data_t\n_details\n;first line\nsecond line\n;\n_after 1\n"
	blocks, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	v, err := blocks[0].Str("_details")
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", v)
	after, err := blocks[0].Int("_after")
	require.NoError(t, err)
	assert.Equal(t, 1, after)
}

func TestNullValues(t *testing.T) {
	blocks, err := Read(strings.NewReader("data_n\n_missing ?\n_absent .\n"))
	require.NoError(t, err)
	_, err = blocks[0].Str("_missing")
	assert.Error(t, err)
	_, err = blocks[0].Str("_absent")
	assert.Error(t, err)
	_, err = blocks[0].Str("_never_given")
	assert.Error(t, err)
}

func TestParseNumeric(t *testing.T) {
	v, err := ParseNumeric("5.6402(2)")
	require.NoError(t, err)
	assert.InDelta(t, 5.6402, v, 1e-12)
	v, err = ParseNumeric("-0.25")
	require.NoError(t, err)
	assert.InDelta(t, -0.25, v, 1e-12)
	_, err = ParseNumeric("abc")
	assert.Error(t, err)
}

func TestMultipleBlocks(t *testing.T) {
	in := "#leading comment\ndata_one\n_x 1\ndata_two\n_x 2\n"
	blocks, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "one", blocks[0].Name)
	assert.Equal(t, "two", blocks[1].Name)
	x, err := blocks[1].Int("_x")
	require.NoError(t, err)
	assert.Equal(t, 2, x)
}

func TestElementSymbol(t *testing.T) {
	assert.Equal(t, "Cl", elementSymbol("Cl1-"))
	assert.Equal(t, "Na", elementSymbol("Na1+"))
	assert.Equal(t, "O", elementSymbol("O2-"))
	assert.Equal(t, "Fe", elementSymbol("FE3+"))
	assert.Equal(t, "", elementSymbol("123"))
}

func TestStructureRead(t *testing.T) {
	S, err := StructureRead("../test/NaCl.cif")
	require.NoError(t, err)
	assert.Equal(t, "NaCl", S.Name)
	assert.Equal(t, "F m -3 m", S.SpaceGroup)
	assert.Equal(t, 8, S.Len())
	assert.Equal(t, "Cl4 Na4", S.FormulaSum())
	assert.InDelta(t, 179.43, S.Lattice().Volume(), 0.02)
	for i := 0; i < S.Len(); i++ {
		s := S.Site(i)
		assert.Equal(t, 4, s.Multiplicity)
		assert.Equal(t, 1.0, s.Occupancy)
		assert.Equal(t, 0, s.AttachedH)
		assert.InDelta(t, 1.0, s.Biso, 1e-12)
	}
}

func TestStructureReadCompressed(t *testing.T) {
	for _, name := range []string{"../test/NaCl.cif.gz", "../test/NaCl.cif.zst"} {
		S, err := StructureRead(name)
		require.NoError(t, err, name)
		assert.Equal(t, 8, S.Len(), name)
		assert.Equal(t, "Cl4 Na4", S.FormulaSum(), name)
	}
}

func TestStructureReadErrors(t *testing.T) {
	_, err := StructureRead("../test/nonexistent.cif")
	require.Error(t, err)
	cerr, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, "../test/nonexistent.cif", cerr.FileName())
	assert.Equal(t, "cif", cerr.Format())
	assert.Contains(t, err.Error(), UnableToOpen)
}

func TestStructureFromBlockErrors(t *testing.T) {
	//no cell
	blocks, err := Read(strings.NewReader("data_x\n_chemical_name_common 'no cell'\n"))
	require.NoError(t, err)
	_, err = StructureFromBlock(blocks[0])
	assert.Error(t, err)
	//cell but no atom sites
	in := "data_x\n_cell_length_a 4\n_cell_length_b 4\n_cell_length_c 4\n" +
		"_cell_angle_alpha 90\n_cell_angle_beta 90\n_cell_angle_gamma 90\n"
	blocks, err = Read(strings.NewReader(in))
	require.NoError(t, err)
	_, err = StructureFromBlock(blocks[0])
	assert.Error(t, err)
}

//The perovskite fixture has no symmetry beyond the identity, so the
//structure is exactly the 5 listed sites.
func TestPerovskiteIntegration(t *testing.T) {
	S, err := StructureRead("../test/CaTiO3.cif")
	require.NoError(t, err)
	assert.Equal(t, 5, S.Len())
	assert.Equal(t, "Ca O3 Ti", S.FormulaSum())

	econ, err := S.AvgECoN(3.2)
	require.NoError(t, err)
	require.Contains(t, econ, "Ti")
	require.Contains(t, econ, "Ca")
	assert.True(t, math.Abs(econ["Ti"]-6) < 1e-6, "Ti ECoN: %f", econ["Ti"])
	assert.True(t, math.Abs(econ["Ca"]-12) < 1e-6, "Ca ECoN: %f", econ["Ca"])
}

//Connectivity counts partners across all cation species: each TiO6
//octahedron corner-shares one O with its 6 Ti axis images and a 3-O face
//with the 8 surrounding CaO12 cuboctahedra; each CaO12 corner-shares with
//its 12 Ca face-diagonal images and face-shares with its 6 Ca axis images
//plus the 8 neighboring TiO6.
func TestPerovskiteConnectivity(t *testing.T) {
	S, err := StructureRead("../test/CaTiO3.cif")
	require.NoError(t, err)
	conn, err := xtal.Connectivity(S, 3.2)
	require.NoError(t, err)
	require.Contains(t, conn, "Ti")
	require.Contains(t, conn, "Ca")
	assert.Equal(t, xtal.ConnCounts{0, 6, 0, 8}, *conn["Ti"])
	assert.Equal(t, xtal.ConnCounts{0, 12, 0, 14}, *conn["Ca"])
}
