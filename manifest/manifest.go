/*
Package manifest reads batch manifests describing many sprite sheets to
repack in one run.

A manifest is an HCL file with one sheet block per job:

	workers = 2

	sheet "walk" {
	  input          = "walk.png"
	  output         = "out/walk.png"
	  frame_width    = 32
	  frame_height   = 32
	  frames_per_row = 4
	}

frames_per_row and workers are optional. Relative paths are resolved against
the directory containing the manifest.
*/
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

var (
	errNoSheets = errors.New("manifest: no sheets defined")
	errWorkers  = errors.New("manifest: workers cannot be negative")
)

// Sheet is a single repack job
type Sheet struct {
	Name         string `hcl:"name,label"`
	Input        string `hcl:"input"`
	Output       string `hcl:"output"`
	FrameWidth   int    `hcl:"frame_width"`
	FrameHeight  int    `hcl:"frame_height"`
	FramesPerRow *int   `hcl:"frames_per_row,optional"`
}

// Manifest is a decoded batch manifest
type Manifest struct {
	Workers int     `hcl:"workers,optional"`
	Sheets  []Sheet `hcl:"sheet,block"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to parse %s: %s", path, diags.Error())
	}
	return decode(file, path)
}

// Parse decodes a manifest held in src. filename is used in diagnostics and
// to resolve relative paths.
func Parse(src []byte, filename string) (*Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to parse %s: %s", filename, diags.Error())
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Manifest, error) {
	var m Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to decode %s: %s", filename, diags.Error())
	}

	if len(m.Sheets) == 0 {
		return nil, errNoSheets
	}
	if m.Workers < 0 {
		return nil, errWorkers
	}

	dir := filepath.Dir(filename)
	seen := make(map[string]struct{}, len(m.Sheets))
	for i := range m.Sheets {
		s := &m.Sheets[i]
		if _, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("manifest: duplicate sheet %q", s.Name)
		}
		seen[s.Name] = struct{}{}

		s.Input = resolve(dir, s.Input)
		s.Output = resolve(dir, s.Output)
	}

	return &m, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
