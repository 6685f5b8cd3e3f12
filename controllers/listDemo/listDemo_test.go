package listDemo

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intList/gates/storage"
	"intList/gates/storage/list"
	"intList/gates/storage/naive"
	"intList/models/dto"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTracked возвращает фабрику списков, запоминающую последний созданный список
func newTracked() (func() storage.Storage, *storage.Storage) {
	var last storage.Storage
	return func() storage.Storage {
		last = list.NewList()
		return last
	}, &last
}

func assertReleased(t *testing.T, st storage.Storage) {
	t.Helper()
	_, err := st.Render()
	assert.Equal(t, storage.ErrReleased, errors.Cause(err))
}

func TestRunText(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected string
	}{
		{"default", []int{1, 2, 3}, "BEFORE: null\nAFTER: [1]->[2]->[3]->null\n"},
		{"single", []int{1}, "BEFORE: null\nAFTER: [1]->null\n"},
		{"empty", nil, "BEFORE: null\nAFTER: null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			factory, last := newTracked()

			report, err := NewDemo(factory, &out).Run(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
			assert.Equal(t, len(tt.values), report.Length)
			assertReleased(t, *last)
		})
	}
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer

	_, err := NewDemo(func() storage.Storage { return list.NewList() }, &out, WithFormat(FormatJSON)).Run([]int{1, 2, 3})
	require.NoError(t, err)

	var report dto.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, dto.Report{
		Before: "null",
		After:  "[1]->[2]->[3]->null",
		Values: []int{1, 2, 3},
		Length: 3,
	}, report)
}

func TestRunJSONEmpty(t *testing.T) {
	var out bytes.Buffer

	_, err := NewDemo(func() storage.Storage { return list.NewList() }, &out, WithFormat(FormatJSON)).Run(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"before":"null","after":"null","values":[],"length":0}`, out.String())
}

func TestRunStyled(t *testing.T) {
	var out bytes.Buffer

	_, err := NewDemo(func() storage.Storage { return list.NewList() }, &out, WithStyle(true)).Run([]int{7})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "BEFORE:")
	assert.Contains(t, out.String(), "[7]->null")
}

func TestRunNaiveFaults(t *testing.T) {
	var out bytes.Buffer
	var last storage.Storage

	_, err := NewDemo(func() storage.Storage {
		last = naive.NewList()
		return last
	}, &out).Run([]int{1, 2, 3})

	require.Error(t, err)
	assert.Equal(t, storage.ErrAbsentReference, errors.Cause(err))
	assert.Contains(t, err.Error(), "st.Append(1)")
	assert.Equal(t, "BEFORE: null\n", out.String())
	assertReleased(t, last)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRunWriteFailureReleases(t *testing.T) {
	factory, last := newTracked()

	_, err := NewDemo(factory, failingWriter{}).Run([]int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
	assertReleased(t, *last)
}

func TestRunLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	_, err := NewDemo(func() storage.Storage { return list.NewList() }, io.Discard, WithLogFile(path)).Run([]int{1})
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "OK - run: {length: 1}")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
}
