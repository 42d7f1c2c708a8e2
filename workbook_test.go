package sheetview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	odt := filepath.Join(dir, "book.ods")
	require.NoError(t, os.WriteFile(odt, []byte("x"), 0o644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "nope.xlsx"), ErrFileNotFound},
		{"unknown extension", odt, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	path := createPeopleWorkbook(t)
	_, err := Open(path, WithBackend("poi"))
	assert.ErrorContains(t, err, "unknown backend")
}

func TestWorkbook_SheetLookup(t *testing.T) {
	path := createPeopleWorkbook(t)
	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, path, wb.Source())

	_, err = wb.Sheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = wb.SheetAt(2)
	assert.ErrorIs(t, err, ErrSheetNotFound)
	_, err = wb.SheetAt(-1)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	first, err := wb.SheetAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Totals", first.Name())

	again, err := wb.Sheet("Totals")
	require.NoError(t, err)
	assert.Same(t, first, again, "sheets are loaded once")
}

func TestWorkbook_ViewOutlivesClose(t *testing.T) {
	path := createPeopleWorkbook(t)
	wb, err := Open(path)
	require.NoError(t, err)

	view, err := wb.Sheet("People")
	require.NoError(t, err)
	require.NoError(t, wb.Close())

	row, ok, err := view.Row(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", row[0])
}

func TestOpenReader_Excelize(t *testing.T) {
	path := createPeopleWorkbook(t)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	wb, err := OpenReader(f)
	require.NoError(t, err)
	defer wb.Close()

	assert.Empty(t, wb.Source())
	view, err := wb.Sheet("People")
	require.NoError(t, err)
	assert.Equal(t, 3, view.RowCount())
}

func TestOpenReader_UnknownFormat(t *testing.T) {
	_, err := OpenReader(strings.NewReader(""), WithFormat("ods"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
