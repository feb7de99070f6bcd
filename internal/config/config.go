// Package config reads scan descriptions from YAML and builds the
// scan.Path they describe.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	scan "zappem.net/pub/kinematics/scan"
)

// The scan patterns a Config may name.
const (
	PatternGrid   = "grid"
	PatternSnake  = "snake"
	PatternRaster = "raster"
)

// maxFileSize bounds the size of a config file.
const maxFileSize = 1 << 20

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid scan config")

// XYZ holds decimal micrometre strings for a position.
type XYZ struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

// XY holds decimal micrometre strings for a per-axis length.
type XY struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Count holds per-axis numbers of points.
type Count struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Config describes a scan. Exactly one of Step and Points must be
// given.
type Config struct {
	Pattern     string `yaml:"pattern"`
	Plane       string `yaml:"plane"`
	Origin      XYZ    `yaml:"origin"`
	Grid        XY     `yaml:"grid"`
	Step        *XY    `yaml:"step,omitempty"`
	Points      *Count `yaml:"points,omitempty"`
	FlybackSkip string `yaml:"flyback_skip,omitempty"`
	RepeatFirst bool   `yaml:"repeat_first,omitempty"`
	RepeatLast  bool   `yaml:"repeat_last,omitempty"`
}

// Decode reads a Config from YAML and validates it. Unknown keys are
// rejected.
func Decode(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a Config from a .yaml or .yml file.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	f, err := os.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", ErrInvalid, field, err)
	}
	return v, nil
}

func parsePair(field string, xy XY) (scan.Pair, error) {
	x, err := parseDecimal(field+".x", xy.X)
	if err != nil {
		return scan.Pair{}, err
	}
	y, err := parseDecimal(field+".y", xy.Y)
	if err != nil {
		return scan.Pair{}, err
	}
	return scan.Pair{X: x, Y: y}, nil
}

// Validate checks the config is complete and well formed. It does not
// check the geometry; Build reports degenerate grids.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Pattern) {
	case PatternGrid, PatternSnake, PatternRaster:
	default:
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalid, c.Pattern)
	}
	if _, err := scan.ParsePlane(c.Plane); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if (c.Step == nil) == (c.Points == nil) {
		return fmt.Errorf("%w: exactly one of step and points is required", ErrInvalid)
	}
	if c.FlybackSkip != "" && strings.ToLower(c.Pattern) != PatternRaster {
		return fmt.Errorf("%w: flyback_skip only applies to raster scans", ErrInvalid)
	}
	if _, err := c.origin(); err != nil {
		return err
	}
	if _, err := parsePair("grid", c.Grid); err != nil {
		return err
	}
	if c.Step != nil {
		if _, err := parsePair("step", *c.Step); err != nil {
			return err
		}
	}
	if _, err := parseDecimal("flyback_skip", c.FlybackSkip); err != nil {
		return err
	}
	return nil
}

func (c *Config) origin() (scan.Coordinate, error) {
	x, err := parseDecimal("origin.x", c.Origin.X)
	if err != nil {
		return scan.Coordinate{}, err
	}
	y, err := parseDecimal("origin.y", c.Origin.Y)
	if err != nil {
		return scan.Coordinate{}, err
	}
	z, err := parseDecimal("origin.z", c.Origin.Z)
	if err != nil {
		return scan.Coordinate{}, err
	}
	return scan.Coordinate{X: x, Y: y, Z: z}, nil
}

// Build generates the path the config describes.
func (c *Config) Build() (scan.Path, error) {
	if err := c.Validate(); err != nil {
		return scan.Path{}, err
	}
	plane, _ := scan.ParsePlane(c.Plane)
	origin, _ := c.origin()
	grid, _ := parsePair("grid", c.Grid)

	var opts []scan.RasterOption
	if c.FlybackSkip != "" {
		skip, _ := parseDecimal("flyback_skip", c.FlybackSkip)
		opts = append(opts, scan.WithFlybackSkip(skip))
	}

	var (
		p   scan.Path
		err error
	)
	pattern := strings.ToLower(c.Pattern)
	if c.Step != nil {
		step, _ := parsePair("step", *c.Step)
		switch pattern {
		case PatternGrid:
			p, err = scan.New(origin, grid, step, plane)
		case PatternSnake:
			p, err = scan.NewSnake(origin, grid, step, plane)
		default:
			p, err = scan.NewRaster(origin, grid, step, plane, opts...)
		}
	} else {
		n := scan.Counts{X: c.Points.X, Y: c.Points.Y}
		switch pattern {
		case PatternGrid:
			p, err = scan.NewByNumberOfPoints(origin, grid, n, plane)
		case PatternSnake:
			p, err = scan.NewSnakeByNumberOfPoints(origin, grid, n, plane)
		default:
			p, err = scan.NewRasterByNumberOfPoints(origin, grid, n, plane, opts...)
		}
	}
	if err != nil {
		return scan.Path{}, fmt.Errorf("%s scan: %w", pattern, err)
	}
	if c.RepeatFirst {
		p = p.RepeatFirstPoint()
	}
	if c.RepeatLast {
		p = p.RepeatLastPoint()
	}
	return p, nil
}
