package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-impact-analysis/internal/domain"
)

const sampleRows = 4

func assertSampleFrame(t *testing.T, f *Frame) {
	t.Helper()
	assert.Equal(t, sampleRows, f.Len())
	assert.Equal(t, 11, len(f.Columns))

	i, ok := f.Column("EVTYPE")
	require.True(t, ok)
	// Source row order is preserved.
	assert.Equal(t, "TORNADO", f.Rows[0][i])
	assert.Equal(t, "TSTM WIND", f.Rows[1][i])
	assert.Equal(t, "AVALANCHE", f.Rows[3][i])
}

func TestLoad(t *testing.T) {
	t.Run("plain csv", func(t *testing.T) {
		f, err := Load(filepath.Join("testdata", "storm_sample.csv"))
		require.NoError(t, err)
		assertSampleFrame(t, f)
	})

	t.Run("gzip", func(t *testing.T) {
		f, err := Load(filepath.Join("testdata", "storm_sample.csv.gz"))
		require.NoError(t, err)
		assertSampleFrame(t, f)
	})

	t.Run("bzip2", func(t *testing.T) {
		f, err := Load(filepath.Join("testdata", "storm_sample.csv.bz2"))
		require.NoError(t, err)
		assertSampleFrame(t, f)
	})

	t.Run("quoted field with comma", func(t *testing.T) {
		f, err := Load(filepath.Join("testdata", "storm_sample.csv"))
		require.NoError(t, err)
		i, ok := f.Column("REMARKS")
		require.True(t, ok)
		assert.Equal(t, "Trees down, power lines snapped", f.Rows[1][i])
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no_such_file.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestLoad_NotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv.gz")
	require.NoError(t, os.WriteFile(path, []byte("this is not gzip data"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestLoad_RaggedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "A,B,C\n1,2,3\n4,5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)

	// A row with the wrong field count is an error, never a silent omission.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}
