//structdesc reads crystal structures from CIF files and reports their
//structural descriptors: per-species effective (Hoppe) and O'Keeffe
//coordination numbers, and the connectivity between the cation
//coordination polyhedra.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	xtal "github.com/medgbb/structural-descriptors-repo"
	"github.com/medgbb/structural-descriptors-repo/cif"
	"github.com/medgbb/structural-descriptors-repo/xtalgraph"
	"github.com/medgbb/structural-descriptors-repo/xtalplot"
	"github.com/rs/zerolog"
)

type connReport struct {
	Isolated int `json:"isolated"`
	Corner   int `json:"corner"`
	Edge     int `json:"edge"`
	Face     int `json:"face"`
}

type report struct {
	File         string                `json:"file"`
	Name         string                `json:"name"`
	Formula      string                `json:"formula"`
	SpaceGroup   string                `json:"space_group,omitempty"`
	Cell         [6]float64            `json:"cell"`
	Volume       float64               `json:"volume"`
	Sites        int                   `json:"sites"`
	ECoN         map[string]float64    `json:"econ"`
	OKeeffeCN    map[string]float64    `json:"okeeffe_cn"`
	Connectivity map[string]connReport `json:"connectivity"`
	Components   int                   `json:"framework_components"`
}

func main() {
	radius := flag.Float64("radius", xtal.DefaultRadius, "cutoff radius (Angstrom) for peripheral-ion searches")
	jsonOut := flag.Bool("json", false, "print one JSON document per file instead of text")
	plotPrefix := flag.String("plot", "", "if set, save <prefix>_bonds.png and <prefix>_cn.png per file")
	verbose := flag.Bool("v", false, "chatty logging")
	flag.Parse()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	if flag.NArg() == 0 {
		logger.Fatal().Msg("no CIF files given")
	}
	failed := 0
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, name := range flag.Args() {
		rep, err := describe(name, *radius, *plotPrefix, logger)
		if err != nil {
			logger.Error().Err(err).Str("file", name).Msg("skipping file")
			failed++
			continue
		}
		if *jsonOut {
			if err := enc.Encode(rep); err != nil {
				logger.Fatal().Err(err).Msg("can't encode report")
			}
		} else {
			printReport(rep)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func describe(name string, radius float64, plotPrefix string, logger zerolog.Logger) (*report, error) {
	logger.Debug().Str("file", name).Float64("radius", radius).Msg("reading structure")
	S, err := cif.StructureRead(name)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("formula", S.FormulaSum()).Int("sites", S.Len()).Msg("structure read")
	econ, err := S.AvgECoN(radius)
	if err != nil {
		return nil, err
	}
	okeeffe, err := S.AvgOKeeffeCN(radius)
	if err != nil {
		return nil, err
	}
	conn, err := xtal.Connectivity(S, radius)
	if err != nil {
		return nil, err
	}
	net, err := xtalgraph.FromStructure(S, radius)
	if err != nil {
		return nil, err
	}
	rep := &report{
		File:         name,
		Name:         S.Name,
		Formula:      S.FormulaSum(),
		SpaceGroup:   S.SpaceGroup,
		Sites:        S.Len(),
		Volume:       S.Lattice().Volume(),
		ECoN:         econ,
		OKeeffeCN:    okeeffe,
		Connectivity: map[string]connReport{},
		Components:   len(net.Components()),
	}
	rep.Cell[0], rep.Cell[1], rep.Cell[2], rep.Cell[3], rep.Cell[4], rep.Cell[5] = S.Lattice().Parameters()
	for species, counts := range conn {
		rep.Connectivity[species] = connReport{
			Isolated: counts[xtal.Isolated],
			Corner:   counts[xtal.Corner],
			Edge:     counts[xtal.Edge],
			Face:     counts[xtal.Face],
		}
	}
	if plotPrefix != "" {
		if err := xtalplot.BondLengthHistogram(S, radius, 16, rep.Formula, plotPrefix+"_bonds"); err != nil {
			return nil, err
		}
		if err := xtalplot.CoordNumBars(econ, rep.Formula, plotPrefix+"_cn"); err != nil {
			return nil, err
		}
		logger.Debug().Str("prefix", plotPrefix).Msg("plots saved")
	}
	return rep, nil
}

func printReport(rep *report) {
	fmt.Printf("%s: %s", rep.File, rep.Formula)
	if rep.SpaceGroup != "" {
		fmt.Printf("  [%s]", rep.SpaceGroup)
	}
	fmt.Printf("\n  cell: a=%.4f b=%.4f c=%.4f alpha=%.2f beta=%.2f gamma=%.2f  V=%.2f A^3  (%d sites)\n",
		rep.Cell[0], rep.Cell[1], rep.Cell[2], rep.Cell[3], rep.Cell[4], rep.Cell[5], rep.Volume, rep.Sites)
	for _, species := range sortedKeys(rep.ECoN) {
		fmt.Printf("  %-2s  ECoN=%6.3f  O'Keeffe CN=%6.3f", species, rep.ECoN[species], rep.OKeeffeCN[species])
		if c, ok := rep.Connectivity[species]; ok {
			fmt.Printf("  sharing: isolated=%d corner=%d edge=%d face=%d", c.Isolated, c.Corner, c.Edge, c.Face)
		}
		fmt.Println()
	}
	fmt.Printf("  polyhedral framework components: %d\n", rep.Components)
}

func sortedKeys(m map[string]float64) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
