package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/platformer/tilemap"
	"github.com/milk9111/platformer/tiles"
)

type conversion struct {
	width  int
	height int
	ids    []uint16
	info   []tiles.TileInfo
}

// asciiInfo is the table matching tilemap.DefaultLegend.
var asciiInfo = []tiles.TileInfo{{}, {Solid: true, Friction: 1}}

func convertASCIIFile(path string) (*conversion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, h, ids, err := tilemap.FromASCII(f, nil)
	if err != nil {
		return nil, err
	}
	return &conversion{width: w, height: h, ids: ids, info: asciiInfo}, nil
}

// convertTMX reads one tile layer of a Tiled map. Map ids are Tiled global
// ids, so id 0 stays empty and the tile-info table has one row per gid.
// Tiles are solid with friction 1 unless their "solid" or "friction"
// properties say otherwise.
func convertTMX(path, layerName string) (*conversion, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	layer, err := pickLayer(m, layerName)
	if err != nil {
		return nil, err
	}

	var maxGID uint32
	for _, ts := range m.Tilesets {
		maxGID = max(maxGID, ts.FirstGID+uint32(ts.TileCount)-1)
	}
	if maxGID > 0xFFFF {
		return nil, fmt.Errorf("tile gid %d does not fit in 16 bits", maxGID)
	}

	info := make([]tiles.TileInfo, maxGID+1)
	for _, ts := range m.Tilesets {
		for id := 0; id < ts.TileCount; id++ {
			info[ts.FirstGID+uint32(id)] = tiles.TileInfo{Solid: true, Friction: 1}
		}
		for _, t := range ts.Tiles {
			gid := ts.FirstGID + t.ID
			if gid > maxGID {
				continue
			}
			info[gid] = applyProperties(info[gid], t.Properties)
		}
	}

	ids := make([]uint16, m.Width*m.Height)
	for i, t := range layer.Tiles {
		if i >= len(ids) {
			break
		}
		if t == nil || t.IsNil() || t.Tileset == nil {
			continue
		}
		ids[i] = uint16(t.Tileset.FirstGID + t.ID)
	}

	return &conversion{width: m.Width, height: m.Height, ids: ids, info: info}, nil
}

func pickLayer(m *tiled.Map, name string) (*tiled.Layer, error) {
	for _, l := range m.Layers {
		if name == "" || l.Name == name {
			return l, nil
		}
	}
	if name == "" {
		return nil, fmt.Errorf("map has no tile layers")
	}
	return nil, fmt.Errorf("no tile layer named %q", name)
}

func applyProperties(ti tiles.TileInfo, props tiled.Properties) tiles.TileInfo {
	for _, p := range props {
		switch p.Name {
		case "solid":
			if v, err := strconv.ParseBool(p.Value); err == nil {
				ti.Solid = v
			}
		case "friction":
			if v, err := strconv.ParseFloat(p.Value, 32); err == nil {
				ti.Friction = float32(v)
			}
		}
	}
	return ti
}

func (c *conversion) writeMap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tilemap.Encode(f, c.width, c.height, c.ids); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *conversion) writeInfo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tiles.WriteCSV(f, c.info); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
