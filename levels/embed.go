package levels

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/milk9111/platformer/tilemap"
	"github.com/milk9111/platformer/tiles"
)

// map1.txt is the ASCII source of map1.map; regenerate with cmd/mapconv.
//
//go:embed *.map *.csv *.txt
var LevelsFS embed.FS

// open reads name from disk, as given or under levels/, when it exists.
// Otherwise it falls back to the embedded levels.
func open(name string) (io.ReadCloser, error) {
	for _, p := range []string{name, filepath.Join("levels", name)} {
		if f, err := os.Open(p); err == nil {
			return f, nil
		}
	}
	return LevelsFS.Open(path.Base(filepath.ToSlash(name)))
}

// LoadTileSet reads a tile-info CSV table.
func LoadTileSet(name string, tileSize int) (*tiles.TileSet, error) {
	f, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", name, err)
	}
	defer f.Close()

	info, err := tiles.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return tiles.NewTileSet(tileSize, info)
}

// LoadMap reads a binary map and checks its tiles against ts.
func LoadMap(name string, ts *tiles.TileSet) (*tilemap.Map, error) {
	f, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", name, err)
	}
	defer f.Close()

	m, err := tilemap.Load(f, ts)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return m, nil
}

// Load reads a map together with its tile-info table.
func Load(mapName, tileInfo string, tileSize int) (*tilemap.Map, error) {
	ts, err := LoadTileSet(tileInfo, tileSize)
	if err != nil {
		return nil, err
	}
	return LoadMap(mapName, ts)
}

// Names lists the embedded maps.
func Names() ([]string, error) {
	return fs.Glob(LevelsFS, "*.map")
}
