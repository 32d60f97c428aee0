package converter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTSVWriter_HeaderAndRows(t *testing.T) {
	d := NewDataset()
	d.Append([]Field{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})
	d.Append([]Field{{Key: "a", Value: "3"}, {Key: "b", Value: "4"}})

	var buf bytes.Buffer
	err := NewTSVWriter(&buf).Write(d)
	require.NoError(t, err)
	require.Equal(t, "a\tb\n1\t2\n3\t4\n", buf.String())
}

func TestTSVWriter_MissingColumnAborts(t *testing.T) {
	d := NewDataset()
	d.Append([]Field{{Key: "a", Value: "1"}})
	d.Append([]Field{{Key: "b", Value: "2"}})

	var buf bytes.Buffer
	err := NewTSVWriter(&buf).Write(d)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, 0, missing.Row)
	require.Equal(t, "b", missing.Column)

	// The header was already flushed, but no partial data row follows it
	require.Equal(t, "a\tb\n", buf.String())
}

func TestTSVWriter_CompleteRowsFlushedBeforeFailure(t *testing.T) {
	d := NewDataset()
	d.Append([]Field{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})
	d.Append([]Field{{Key: "a", Value: "3"}})

	var buf bytes.Buffer
	err := NewTSVWriter(&buf).Write(d)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, 1, missing.Row)
	require.Equal(t, "b", missing.Column)
	require.Equal(t, "a\tb\n1\t2\n", buf.String())
}

func TestTSVWriter_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	err := NewTSVWriter(&buf).Write(NewDataset())
	require.NoError(t, err)
	require.Equal(t, "\n", buf.String())
}

func TestJSONWriter_Envelope(t *testing.T) {
	d := NewDataset()
	d.Append([]Field{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})
	d.Append([]Field{{Key: "b", Value: "4"}, {Key: "a", Value: "3"}})

	var buf bytes.Buffer
	err := NewJSONWriter(&buf).Write(d)
	require.NoError(t, err)

	var doc JSONDataset
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, []string{"a", "b"}, doc.Columns)
	require.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, doc.Rows)
}

func TestJSONWriter_MissingColumnFailsLikeTSV(t *testing.T) {
	d := NewDataset()
	d.Append([]Field{{Key: "a", Value: "1"}})
	d.Append([]Field{{Key: "b", Value: "2"}})

	var buf bytes.Buffer
	err := NewJSONWriter(&buf).Write(d)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	// Nothing is emitted: the JSON document is built in full before encoding
	require.Zero(t, buf.Len())
}

func TestJSONWriter_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSONWriter(&buf).Write(NewDataset())
	require.NoError(t, err)

	var doc JSONDataset
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Empty(t, doc.Columns)
	require.Empty(t, doc.Rows)
}
