// Command scanpath generates the points of a scan described by a YAML
// file and writes their positions as CSV.
//
//	scanpath -config raster.yaml -out raster.csv -plot raster.png
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	scan "zappem.net/pub/kinematics/scan"
	"zappem.net/pub/kinematics/scan/internal/config"
	"zappem.net/pub/kinematics/scan/internal/render"
)

var (
	configPath = flag.String("config", "", "scan description (.yaml)")
	outPath    = flag.String("out", "", "CSV output file (default stdout)")
	plotPath   = flag.String("plot", "", "write a preview image (.png, .svg, .pdf)")
	verbose    = flag.Bool("v", false, "log at debug level")
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	return cfg.Build()
}

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code, so that deferred cleanup
// runs before main exits.
func realMain() int {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	if *configPath == "" {
		logger.Error("no scan description given, use -config")
		return 2
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("failed to create output", zap.String("path", *outPath), zap.Error(err))
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := run(logger, *configPath, out, *plotPath); err != nil {
		logger.Error("scan failed", zap.Error(err))
		return 1
	}
	return 0
}

// run builds the scan described by cfgPath, writes it to out and, if
// plotPath is set, renders a preview.
func run(logger *zap.Logger, cfgPath string, out io.Writer, plotPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded scan description",
		zap.String("config", cfgPath),
		zap.String("pattern", cfg.Pattern),
		zap.String("plane", cfg.Plane))

	p, err := cfg.Build()
	if err != nil {
		return err
	}
	logger.Info("generated scan path",
		zap.String("pattern", cfg.Pattern),
		zap.Stringer("plane", p.Plane()),
		zap.Int("points", p.Len()),
		zap.Stringer("origin", p.Origin()))

	if err := writeCSV(out, p); err != nil {
		return fmt.Errorf("failed to write points: %w", err)
	}

	if plotPath != "" {
		title := strings.TrimSuffix(filepath.Base(cfgPath), filepath.Ext(cfgPath))
		if err := render.Save(p, title, plotPath); err != nil {
			return err
		}
		logger.Info("wrote preview", zap.String("path", plotPath))
	}
	return nil
}

// writeCSV writes one row per visited point: its position in the
// path, its lattice index and its position in micrometres.
func writeCSV(w io.Writer, p scan.Path) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n", "i", "j", "x_um", "y_um", "z_um"}); err != nil {
		return err
	}
	for n, idx := range p.Points() {
		c := p.CoordinateForPoint(idx)
		row := []string{
			strconv.Itoa(n),
			strconv.Itoa(idx.X),
			strconv.Itoa(idx.Y),
			c.X.String(),
			c.Y.String(),
			c.Z.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
