package cif

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	xtal "github.com/medgbb/structural-descriptors-repo"
)

//StructureRead opens a CIF file and builds a Structure from its first
//data block, applying the symmetry operations of the block so that the
//returned structure contains the full cell. Files ending in .gz or .zst
//are decompressed on the fly.
func StructureRead(name string) (*xtal.Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{msg: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"StructureRead"}}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, Error{msg: "Can't read gzip header: " + err.Error(), filename: name, deco: []string{"StructureRead"}}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, Error{msg: "Can't read zstd header: " + err.Error(), filename: name, deco: []string{"StructureRead"}}
		}
		defer zr.Close()
		r = zr
	}
	blocks, err := Read(r)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = name
			return nil, e
		}
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, Error{msg: "File contains no data block", filename: name, deco: []string{"StructureRead"}}
	}
	S, err := StructureFromBlock(blocks[0])
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = name
			return nil, e
		}
		return nil, err
	}
	return S, nil
}

//the cell parameter tags, in the order NewLattice wants them
var cellTags = []string{
	"_cell_length_a",
	"_cell_length_b",
	"_cell_length_c",
	"_cell_angle_alpha",
	"_cell_angle_beta",
	"_cell_angle_gamma",
}

//the symmetry-operation column, old and new dictionary names
var symopTags = []string{
	"_symmetry_equiv_pos_as_xyz",
	"_space_group_symop_operation_xyz",
}

//StructureFromBlock builds a Structure from one CIF data block. The six
//cell tags and an atom-site loop with fractional coordinates are
//required; everything else is optional.
func StructureFromBlock(b *Block) (*xtal.Structure, error) {
	var cell [6]float64
	for i, tag := range cellTags {
		v, err := b.Float(tag)
		if err != nil {
			return nil, Error{msg: "Missing or malformed cell: " + err.Error(), deco: []string{"StructureFromBlock"}}
		}
		cell[i] = v
	}
	lat, err := xtal.NewLattice(cell[0], cell[1], cell[2], cell[3], cell[4], cell[5])
	if err != nil {
		return nil, errDecorate(err, "StructureFromBlock")
	}
	sites, err := readSites(b)
	if err != nil {
		return nil, errDecorate(err, "StructureFromBlock")
	}
	ops, err := readSymOps(b)
	if err != nil {
		return nil, errDecorate(err, "StructureFromBlock")
	}
	S, err := xtal.NewStructure(lat, xtal.Expand(sites, ops))
	if err != nil {
		return nil, errDecorate(err, "StructureFromBlock")
	}
	S.Name = b.Name
	if sg, err := b.Str("_symmetry_space_group_name_h-m"); err == nil {
		S.SpaceGroup = sg
	} else if sg, err := b.Str("_space_group_name_h-m_alt"); err == nil {
		S.SpaceGroup = sg
	}
	return S, nil
}

//readSites parses the atom-site loop of the block into the asymmetric
//unit.
func readSites(b *Block) ([]*xtal.Site, error) {
	loop := b.Loop("_atom_site_fract_x")
	if loop == nil {
		return nil, Error{msg: "Data block has no atom-site loop", deco: []string{"readSites"}}
	}
	xcol := loop.Column("_atom_site_fract_x")
	ycol := loop.Column("_atom_site_fract_y")
	zcol := loop.Column("_atom_site_fract_z")
	if ycol < 0 || zcol < 0 {
		return nil, Error{msg: "Atom-site loop lacks fractional y or z coordinates", deco: []string{"readSites"}}
	}
	labelcol := loop.Column("_atom_site_label")
	typecol := loop.Column("_atom_site_type_symbol")
	occcol := loop.Column("_atom_site_occupancy")
	multcol := loop.Column("_atom_site_symmetry_multiplicity")
	hcol := loop.Column("_atom_site_attached_hydrogens")
	bisocol := loop.Column("_atom_site_b_iso_or_equiv")
	if typecol < 0 && labelcol < 0 {
		return nil, Error{msg: "Atom-site loop has neither type symbols nor labels", deco: []string{"readSites"}}
	}
	sites := make([]*xtal.Site, 0, len(loop.Rows))
	for k, row := range loop.Rows {
		s := &xtal.Site{Occupancy: 1}
		species := ""
		if typecol >= 0 {
			species = row[typecol]
		} else {
			species = row[labelcol]
		}
		s.Species = species
		s.Symbol = elementSymbol(species)
		if s.Symbol == "" {
			return nil, Error{msg: fmt.Sprintf("Can't get an element symbol from '%s' in atom-site row %d", species, k), deco: []string{"readSites"}}
		}
		if labelcol >= 0 {
			s.Label = row[labelcol]
		} else {
			s.Label = fmt.Sprintf("%s%d", s.Symbol, k+1)
		}
		for j, col := range []int{xcol, ycol, zcol} {
			v, err := ParseNumeric(row[col])
			if err != nil {
				return nil, Error{msg: fmt.Sprintf("Atom-site row %d: %s", k, err.Error()), deco: []string{"readSites"}}
			}
			s.Frac[j] = v
		}
		var perr error
		optFloat := func(col int, dest *float64) {
			if col < 0 || perr != nil {
				return
			}
			if row[col] == "." || row[col] == "?" {
				return
			}
			v, err := ParseNumeric(row[col])
			if err != nil {
				perr = Error{msg: fmt.Sprintf("Atom-site row %d: %s", k, err.Error()), deco: []string{"readSites"}}
				return
			}
			*dest = v
		}
		optFloat(occcol, &s.Occupancy)
		var mult, hydro, biso float64
		optFloat(multcol, &mult)
		optFloat(hcol, &hydro)
		optFloat(bisocol, &biso)
		if perr != nil {
			return nil, perr
		}
		s.Multiplicity = int(mult)
		s.AttachedH = int(hydro)
		s.Biso = biso
		sites = append(sites, s)
	}
	return sites, nil
}

//readSymOps parses the symmetry-operation loop, if any. No loop means
//just the identity.
func readSymOps(b *Block) ([]*xtal.SymOp, error) {
	for _, tag := range symopTags {
		loop := b.Loop(tag)
		if loop == nil {
			continue
		}
		col := loop.Column(tag)
		ops := make([]*xtal.SymOp, 0, len(loop.Rows))
		for k, row := range loop.Rows {
			op, err := xtal.ParseSymOp(row[col])
			if err != nil {
				return nil, Error{msg: fmt.Sprintf("Symmetry row %d: %s", k, err.Error()), deco: []string{"readSymOps"}}
			}
			ops = append(ops, op)
		}
		return ops, nil
	}
	return []*xtal.SymOp{xtal.Identity()}, nil
}

//elementSymbol extracts the element from a species string like "Na+",
//"O2-" or "Cl1", normalizing its case.
func elementSymbol(species string) string {
	end := 0
	for end < len(species) {
		c := species[end]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return ""
	}
	sym := species[:end]
	//a trailing lowercase letter may belong to a charge notation such as
	//"Cl1-", but letters never do, so two letters max
	if len(sym) > 2 {
		sym = sym[:2]
	}
	sym = strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
	return sym
}

//Errors

//errDecorate asserts that the error implements xtal.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(xtal.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Error is the concrete error type of the cif package. It carries the
//name of the offending file, when one is involved.
type Error struct {
	msg      string
	filename string
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("cif error: %s", err.msg)
	}
	return fmt.Sprintf("cif file %s error: %s", err.filename, err.msg)
}

//Decorate adds new information to the error, and returns the
//accumulated decoration.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string.
func (err Error) FileName() string { return err.filename }

//Format returns the format associated to the error, always "cif".
func (err Error) Format() string { return "cif" }

const (
	UnableToOpen = "Unable to open file"
)
