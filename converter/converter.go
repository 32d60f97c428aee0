package converter

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Stats summarizes one conversion run.
type Stats struct {
	Files   int
	Lines   int
	Rows    int
	Columns int
}

// Converter accumulates RESULT lines from any number of inputs into one
// dataset and emits it once. It owns all run-wide state; inputs are consumed
// sequentially in the order given.
type Converter struct {
	logger  *zap.Logger
	dataset *Dataset
	files   int
	lines   int
}

// NewConverter creates a converter with an empty dataset.
func NewConverter(logger *zap.Logger) *Converter {
	return &Converter{
		logger:  logger,
		dataset: NewDataset(),
	}
}

// ReadFile accumulates the RESULT lines of one input file. An open or scan
// error is fatal to the whole run.
func (c *Converter) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	return c.ReadStream(path, f)
}

// ReadStream accumulates RESULT lines from an arbitrary reader. The name is
// used for diagnostics only.
func (c *Converter) ReadStream(name string, r io.Reader) error {
	c.logger.Info("Reading input", zap.String("input", name))

	reader := NewResultReader(r)
	rows := 0
	for {
		fields, err := reader.ReadFields()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		c.dataset.Append(fields)
		rows++
	}

	c.files++
	c.lines += reader.LinesScanned()
	c.logger.Debug("Finished input",
		zap.String("input", name),
		zap.Int("lines", reader.LinesScanned()),
		zap.Int("rows", rows))
	return nil
}

// Dataset returns the accumulated dataset.
func (c *Converter) Dataset() *Dataset {
	return c.dataset
}

// WriteTo emits the accumulated dataset through the given writer and returns
// the run statistics.
func (c *Converter) WriteTo(w DatasetWriter) (*Stats, error) {
	if err := w.Write(c.dataset); err != nil {
		return nil, err
	}

	stats := &Stats{
		Files:   c.files,
		Lines:   c.lines,
		Rows:    c.dataset.NumRows(),
		Columns: c.dataset.schema.Len(),
	}
	c.logger.Info("Conversion complete",
		zap.Int("files", stats.Files),
		zap.Int("lines", stats.Lines),
		zap.Int("rows", stats.Rows),
		zap.Int("columns", stats.Columns))
	return stats, nil
}
