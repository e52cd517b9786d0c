package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// unescapeTitle turns the two-character sequence `\n` into a line break so
// multi-line titles fit in a single CSV cell.
func unescapeTitle(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `\n`, "\n")
}

// LoadCSV reads a catalog file with the header
// locale,id,title,raw_filename,out_filename[,subtitle][,qr_text].
func LoadCSV(path string) (*Catalog, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	c, err := ReadCSV(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// ReadCSV parses catalog rows from r. Row order within a locale is screen order.
func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("catalog csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"locale", "id", "title", "raw_filename", "out_filename"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog csv is missing column %q", required)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	entries := map[string][]Item{}
	for _, row := range rows[1:] {
		locale := strings.TrimSpace(get(row, "locale"))
		if locale == "" {
			// blank line
			continue
		}
		entries[locale] = append(entries[locale], Item{
			ID:          strings.TrimSpace(get(row, "id")),
			Title:       unescapeTitle(get(row, "title")),
			RawFilename: strings.TrimSpace(get(row, "raw_filename")),
			OutFilename: strings.TrimSpace(get(row, "out_filename")),
			Subtitle:    strings.TrimSpace(get(row, "subtitle")),
			QRText:      strings.TrimSpace(get(row, "qr_text")),
		})
	}
	return NewCatalog(entries)
}
