// Command export converts every test case to a DXF file in testdata/dxf/,
// for inspection in a CAD viewer.
// Run from the svgdxf module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/svgdxf"
	"seehuhn.de/go/svgdxf/testcases"
)

func main() {
	outDir := filepath.Join("testdata", "dxf")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			data, err := convert(tc)
			if err != nil {
				panic(fmt.Sprintf("%s_%s: %v", category, tc.Name, err))
			}
			fname := filepath.Join(outDir, category+"_"+tc.Name+".dxf")
			if err := os.WriteFile(fname, data, 0o644); err != nil {
				panic(err)
			}
		}
	}
}

func convert(tc testcases.TestCase) ([]byte, error) {
	paths := func(yield func(svgdxf.PathNode) bool) {
		for _, p := range tc.Paths {
			if !yield(p) {
				return
			}
		}
	}
	transforms := func(n svgdxf.PathNode) []string {
		return n.(testcases.Path).Transforms
	}
	layer := func(n svgdxf.PathNode) string {
		return n.(testcases.Path).Layer
	}
	meta := svgdxf.Metadata{
		Height:         tc.Height,
		UnitScale:      tc.UnitScale,
		LegacyUnitMode: tc.Legacy,
	}
	return svgdxf.Convert(paths, transforms, layer, meta, &svgdxf.Options{Version: "testcases"})
}
