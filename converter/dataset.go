package converter

import "fmt"

// Row is the partial key→value mapping derived from one RESULT line. Keys the
// line never set are absent, not defaulted, so a missing column is detectable
// at emission time.
type Row map[string]string

// MissingColumnError reports a row that has no value for a column introduced
// by a different row.
type MissingColumnError struct {
	Row    int
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("row %d has no value for column %q", e.Row, e.Column)
}

// Dataset is the column schema plus all rows in input order. Rows are
// immutable once appended; the schema only grows.
type Dataset struct {
	schema *Schema
	rows   []Row
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{schema: NewSchema()}
}

// Append registers any unseen keys in field order and stores the row. A key
// repeated within one line overwrites its earlier value; the schema position
// stays where the key was first seen.
func (d *Dataset) Append(fields []Field) {
	row := make(Row, len(fields))
	for _, f := range fields {
		d.schema.Add(f.Key)
		row[f.Key] = f.Value
	}
	d.rows = append(d.rows, row)
}

// Columns returns the schema keys in discovery order.
func (d *Dataset) Columns() []string {
	return d.schema.Keys()
}

// NumRows returns the number of stored rows.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// Record materializes row i against the full schema, returning its values in
// column order. It fails with a MissingColumnError if the row never set one of
// the schema's columns.
func (d *Dataset) Record(i int) ([]string, error) {
	row := d.rows[i]
	values := make([]string, 0, d.schema.Len())
	for _, key := range d.schema.Keys() {
		value, ok := row[key]
		if !ok {
			return nil, &MissingColumnError{Row: i, Column: key}
		}
		values = append(values, value)
	}
	return values, nil
}
