package converter

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DatasetWriter emits a complete dataset to its destination.
type DatasetWriter interface {
	Write(ds *Dataset) error
}

// TSVWriter writes the dataset as tab-separated values: one header line with
// the column names, then one line per row in input order. Values are written
// verbatim with no escaping.
type TSVWriter struct {
	w io.Writer
}

// NewTSVWriter creates a TSV writer targeting w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{w: w}
}

// Write emits the header and all rows. Each row is fully materialized before
// its line is written, so a row missing a column aborts without a partial line.
func (t *TSVWriter) Write(ds *Dataset) error {
	if _, err := fmt.Fprintln(t.w, strings.Join(ds.Columns(), "\t")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < ds.NumRows(); i++ {
		values, err := ds.Record(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(t.w, strings.Join(values, "\t")); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	return nil
}

// JSONDataset is the envelope emitted by JSONWriter.
type JSONDataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// JSONWriter writes the dataset as a single JSON document. Rows go through the
// same materialization as the TSV path, so a missing column fails identically.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer targeting w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

func (j *JSONWriter) Write(ds *Dataset) error {
	doc := JSONDataset{
		Columns: ds.Columns(),
		Rows:    make([][]string, 0, ds.NumRows()),
	}
	if doc.Columns == nil {
		doc.Columns = []string{}
	}
	for i := 0; i < ds.NumRows(); i++ {
		values, err := ds.Record(i)
		if err != nil {
			return err
		}
		doc.Rows = append(doc.Rows, values)
	}

	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}
