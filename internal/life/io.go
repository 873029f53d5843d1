package life

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Board file layout, little-endian:
//
//	u32 width
//	u32 height
//	stride*height x u64 packed rows
//
// Dimensions are written for validation only; loading never resizes a grid.

// SaveToFile writes the board state to path, replacing any existing file.
func (g *Grid) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(g.width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(g.height)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, g.cells); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// LoadFromFile replaces the board state with the contents of path. The
// stored dimensions must exactly equal the grid's own; a mismatch fails
// with a *DimensionError and leaves the grid untouched. Truncated files
// surface the underlying read error.
func (g *Grid) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return fmt.Errorf("life: reading header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return fmt.Errorf("life: reading header: %w", err)
	}

	if int(width) != g.width || int(height) != g.height {
		return &DimensionError{
			FileWidth: int(width), FileHeight: int(height),
			GridWidth: g.width, GridHeight: g.height,
		}
	}

	cells := make([]uint64, len(g.cells))
	if err := binary.Read(r, binary.LittleEndian, cells); err != nil {
		return fmt.Errorf("life: reading cells: %w", err)
	}

	g.cells = cells
	return nil
}
