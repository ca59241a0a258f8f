package converter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/drummap2notes/pkg/drummap"
)

// File extensions handled by the batch walk
const (
	DrumMapExt  = ".drm"
	NoteNameExt = ".txt"
)

// OutputRootSuffix is appended to the input directory name to form the
// mirrored output root, a sibling of the input directory.
const OutputRootSuffix = "_notenames"

// IsDrumMapFile reports whether filename looks like a drum map source
func IsDrumMapFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), DrumMapExt)
}

// OutputRoot derives the mirrored output directory for an input tree
func OutputRoot(inputDir string) string {
	return filepath.Clean(inputDir) + OutputRootSuffix
}

// Convert parses .drm data and renders the note-name text payload
func (c *Converter) Convert(data []byte) ([]byte, error) {
	m, err := drummap.Parse(data)
	if err != nil {
		return nil, err
	}
	order, err := m.ResolveOrder(c.grouped)
	if err != nil {
		return nil, err
	}
	return renderNoteNames(m, order), nil
}

// ConvertFile converts a single .drm file and writes the text output
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result, err := c.Convert(data)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, result, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// ConvertTree walks inputDir depth-first, converts every .drm file and
// mirrors the results into OutputRoot(inputDir) with a .txt extension,
// creating output directories on demand. A failing file is reported on
// stderr and the walk carries on; only a broken walk itself is an error.
func (c *Converter) ConvertTree(inputDir string) error {
	outRoot := OutputRoot(inputDir)
	converted, failed := 0, 0

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsDrumMapFile(path) {
			return nil
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outRoot, strings.TrimSuffix(rel, filepath.Ext(rel))+NoteNameExt)

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			return nil
		}
		if err := c.ConvertFile(path, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			return nil
		}

		converted++
		return nil
	}

	if err := filepath.WalkDir(inputDir, walk); err != nil {
		return fmt.Errorf("failed to walk %s: %w", inputDir, err)
	}

	fmt.Printf("Converted %d drum map(s) into %s (%d failed)\n", converted, outRoot, failed)
	return nil
}
