package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type ExportServiceInterface interface {
	ExportAll(ctx context.Context, dir string) ([]string, error)
}

type ExportService struct {
	dataService DataServiceInterface
}

func NewExportService(dataService DataServiceInterface) ExportServiceInterface {
	return &ExportService{dataService: dataService}
}

// ExportAll writes one CSV per dataset into dir and returns the written paths.
func (e *ExportService) ExportAll(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	datasets := []struct {
		name string
		load func(context.Context) (any, error)
	}{
		{"weather", func(ctx context.Context) (any, error) { return e.dataService.ListWeather(ctx) }},
		{"crowd", func(ctx context.Context) (any, error) { return e.dataService.ListCrowd(ctx) }},
		{"currency", func(ctx context.Context) (any, error) { return e.dataService.ListCurrency(ctx) }},
		{"hotels", func(ctx context.Context) (any, error) { return e.dataService.ListHotels(ctx) }},
		{"pois", func(ctx context.Context) (any, error) { return e.dataService.ListPOIs(ctx) }},
	}

	var written []string
	for _, ds := range datasets {
		rows, err := ds.load(ctx)
		if err != nil {
			return written, fmt.Errorf("load %s: %w", ds.name, err)
		}

		path := filepath.Join(dir, ds.name+".csv")
		if err := writeCSVFile(path, rows); err != nil {
			return written, fmt.Errorf("write %s: %w", ds.name, err)
		}
		log.Printf("Exported %s", path)
		written = append(written, path)
	}
	return written, nil
}

func writeCSVFile(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV renders a slice of JSON-serialisable rows as CSV. The header is
// the union of every row's keys in first-seen order.
func WriteCSV(w io.Writer, rows any) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("rows must be a list: %w", err)
	}

	var header []string
	seen := map[string]bool{}
	records := make([]map[string]json.RawMessage, 0, len(items))
	for _, item := range items {
		keys, values, err := orderedFields(item)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
		records = append(records, values)
	}

	cw := csv.NewWriter(w)
	if len(header) == 0 {
		cw.Flush()
		return cw.Error()
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		line := make([]string, len(header))
		for i, k := range header {
			line[i] = csvCell(rec[k])
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func orderedFields(obj json.RawMessage) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(obj))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, nil, fmt.Errorf("row is not an object")
	}

	var keys []string
	values := map[string]json.RawMessage{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := tok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, err
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = v
	}
	return keys, values, nil
}

// csvCell flattens a JSON value: null is empty, strings are unquoted, lists
// are joined with ";" and objects stay as JSON.
func csvCell(v json.RawMessage) string {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err == nil {
			parts := make([]string, len(elems))
			for i, el := range elems {
				parts[i] = csvCell(el)
			}
			return strings.Join(parts, ";")
		}
	}
	return string(trimmed)
}
