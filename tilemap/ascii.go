package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultLegend maps '.' to empty space and '#' to the first solid tile.
var DefaultLegend = map[rune]uint16{'.': 0, '#': 1}

// FromASCII converts a text map, one row per line, into tile ids. Every row
// must have the same width and only use runes from legend.
func FromASCII(r io.Reader, legend map[rune]uint16) (width, height int, ids []uint16, err error) {
	if legend == nil {
		legend = DefaultLegend
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		row := []rune(line)
		if height == 0 {
			width = len(row)
		} else if len(row) != width {
			return 0, 0, nil, fmt.Errorf("tilemap: row %d has %d columns, want %d: %w", height, len(row), width, ErrDimensions)
		}
		for x, c := range row {
			id, ok := legend[c]
			if !ok {
				return 0, 0, nil, fmt.Errorf("tilemap: unknown tile %q at (%d,%d)", c, x, height)
			}
			ids = append(ids, id)
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("tilemap: read ascii map: %w", err)
	}
	if width == 0 || height == 0 {
		return 0, 0, nil, fmt.Errorf("tilemap: empty ascii map: %w", ErrDimensions)
	}
	return width, height, ids, nil
}
