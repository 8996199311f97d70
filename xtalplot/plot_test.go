package xtalplot

import (
	"os"
	"path/filepath"
	"testing"

	xtal "github.com/medgbb/structural-descriptors-repo"
	"github.com/medgbb/structural-descriptors-repo/cif"
)

func TestBondLengthHistogram(Te *testing.T) {
	S, err := cif.StructureRead("../test/NaCl.cif")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "bonds")
	if err := BondLengthHistogram(S, xtal.DefaultRadius, 8, "NaCl bonds", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("Histogram file is empty")
	}
	//a radius too short for any bond is an error, not an empty plot
	if err := BondLengthHistogram(S, 0.5, 8, "nothing", name); err == nil {
		Te.Error("A histogram with no bonds should fail")
	}
}

func TestCoordNumBars(Te *testing.T) {
	cns := map[string]float64{"Na": 6, "Ca": 12, "Ti": 6}
	name := filepath.Join(Te.TempDir(), "cn")
	if err := CoordNumBars(cns, "coordination", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Fatal(err)
	}
	if err := CoordNumBars(map[string]float64{}, "empty", name); err == nil {
		Te.Error("Plotting an empty map should fail")
	}
}
