package pcolor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// paletteRow is one color of one palette in CSV form.
type paletteRow struct {
	Palette string `csv:"palette"`
	Index   int    `csv:"index"`
	Hex     string `csv:"hex"`
}

// LoadPalettes decodes a YAML list of palettes:
//
//	- name: sunset
//	  colors: ["#ff5e3a", "#ff9500", "#ffdb4c"]
func LoadPalettes(r io.Reader) ([]Palette, error) {
	var palettes []Palette
	if err := yaml.NewDecoder(r).Decode(&palettes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("load palettes: %w", err)
	}
	return palettes, nil
}

// LoadPalettesFile reads palettes from a YAML file.
func LoadPalettesFile(path string) ([]Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load palettes: %w", err)
	}
	defer f.Close()
	return LoadPalettes(f)
}

// SavePalettes encodes palettes as YAML.
func SavePalettes(w io.Writer, palettes []Palette) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(palettes); err != nil {
		return fmt.Errorf("save palettes: %w", err)
	}
	return enc.Close()
}

// WritePaletteCSV writes palettes as rows of palette,index,hex with a header.
func WritePaletteCSV(w io.Writer, palettes []Palette) error {
	var rows []paletteRow
	for _, p := range palettes {
		for i, c := range p.Colors {
			rows = append(rows, paletteRow{Palette: p.Name, Index: i, Hex: c.Hex()})
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write palette csv: %w", err)
	}
	return nil
}

// ReadPaletteCSV reads rows written by WritePaletteCSV. Palettes are returned
// in first-seen order; colors are placed by their index column.
func ReadPaletteCSV(r io.Reader) ([]Palette, error) {
	var rows []paletteRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read palette csv: %w", err)
	}

	var palettes []Palette
	byName := make(map[string]int)
	for _, row := range rows {
		c, err := ParseHex(row.Hex)
		if err != nil {
			return nil, fmt.Errorf("read palette csv: palette %q index %d: %w", row.Palette, row.Index, err)
		}
		if row.Index < 0 || row.Index >= len(rows) {
			return nil, fmt.Errorf("read palette csv: palette %q: index %d out of range", row.Palette, row.Index)
		}
		pi, ok := byName[row.Palette]
		if !ok {
			pi = len(palettes)
			byName[row.Palette] = pi
			palettes = append(palettes, Palette{Name: row.Palette})
		}
		p := &palettes[pi]
		for len(p.Colors) <= row.Index {
			p.Colors = append(p.Colors, Transparent)
		}
		p.Colors[row.Index] = c
	}
	return palettes, nil
}
