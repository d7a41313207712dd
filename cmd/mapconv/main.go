// Command mapconv converts ASCII text maps and Tiled .tmx maps into the
// binary MAP format, optionally writing a matching tile-info CSV table.
//
//	mapconv -in levels/map1.txt -out levels/map1.map
//	mapconv -in level.tmx -layer ground -out levels/level.map -info levels/level.csv
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

func main() {
	in := flag.String("in", "", "input map (.txt ASCII or .tmx Tiled)")
	out := flag.String("out", "", "output .map file (default: input name with .map)")
	info := flag.String("info", "", "also write the tile-info table as CSV to this path")
	layer := flag.String("layer", "", "tile layer to read from a .tmx map (default: first)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".map"
	}

	var (
		conv *conversion
		err  error
	)
	if strings.EqualFold(filepath.Ext(*in), ".tmx") {
		conv, err = convertTMX(*in, *layer)
	} else {
		conv, err = convertASCIIFile(*in)
	}
	if err != nil {
		log.Fatal("mapconv: convert", "in", *in, "err", err)
	}

	if err := conv.writeMap(*out); err != nil {
		log.Fatal("mapconv: write map", "out", *out, "err", err)
	}
	log.Info("wrote map", "out", *out, "width", conv.width, "height", conv.height)

	if *info != "" {
		if err := conv.writeInfo(*info); err != nil {
			log.Fatal("mapconv: write tile info", "out", *info, "err", err)
		}
		log.Info("wrote tile info", "out", *info, "tiles", len(conv.info))
	}
}
