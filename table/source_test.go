package table

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSourceList(t *testing.T) {
	t.Parallel()

	source := NewDirSource("testdata")

	names, err := source.List()
	require.NoError(t, err)

	assert.Equal(t, []string{"suffix", "turnstile"}, names)
}

func TestDirSourceLoad(t *testing.T) {
	t.Parallel()

	source := NewDirSource("testdata")

	definition, err := source.Load("suffix")
	require.NoError(t, err)

	assert.Equal(t, "ends-with-ab", definition.Name)
}

func TestDirSourceLoadMissing(t *testing.T) {
	t.Parallel()

	source := NewDirSource("testdata")

	_, err := source.Load("no_such_definition")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDefinitionNotFound)
}

func TestDirSourceMissingDirectory(t *testing.T) {
	t.Parallel()

	source := NewDirSource(filepath.Join(t.TempDir(), "absent"))

	_, err := source.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition directory")
}

func TestDirSourceNaturalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data, err := os.ReadFile("testdata/turnstile.yaml")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "machine10.yaml"), data, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "machine2.yaml"), data, 0o600))

	names, err := NewDirSource(dir).List()
	require.NoError(t, err)

	assert.Equal(t, []string{"machine2", "machine10"}, names)
}

func TestDirSourceDecompresses(t *testing.T) {
	t.Parallel()

	plain, err := os.ReadFile("testdata/suffix.yaml")
	require.NoError(t, err)

	want, err := Parse(plain)
	require.NoError(t, err)

	codecs := []struct {
		name string
		ext  string
		wrap func(w io.Writer) (io.WriteCloser, error)
	}{
		{
			name: "gzip",
			ext:  ".yaml.gz",
			wrap: func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		},
		{
			name: "zstd",
			ext:  ".yaml.zst",
			wrap: func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
		},
		{
			name: "lz4",
			ext:  ".yaml.lz4",
			wrap: func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil },
		},
		{
			name: "brotli",
			ext:  ".yaml.br",
			wrap: func(w io.Writer) (io.WriteCloser, error) { return brotli.NewWriter(w), nil },
		},
	}

	for _, codec := range codecs {
		t.Run(codec.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			writer, err := codec.wrap(&buf)
			require.NoError(t, err)

			_, err = writer.Write(plain)
			require.NoError(t, err)
			require.NoError(t, writer.Close())

			dir := t.TempDir()
			path := filepath.Join(dir, "packed"+codec.ext)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

			source := NewDirSource(dir)

			names, err := source.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"packed"}, names)

			got, err := source.Load("packed")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDirSourceDeduplicatesVariants(t *testing.T) {
	t.Parallel()

	plain, err := os.ReadFile("testdata/turnstile.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer

	writer := gzip.NewWriter(&buf)
	_, err = writer.Write(plain)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "turnstile.yaml"), plain, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "turnstile.yaml.gz"), buf.Bytes(), 0o600))

	source := NewDirSource(dir)

	names, err := source.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"turnstile"}, names)

	definition, err := source.Load("turnstile")
	require.NoError(t, err)
	assert.Equal(t, "turnstile", definition.Name)
}

func TestDefinitionName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fileName string
		want     string
		ok       bool
	}{
		{fileName: "traffic.yaml", want: "traffic", ok: true},
		{fileName: "traffic.yml", want: "traffic", ok: true},
		{fileName: "traffic.yaml.gz", want: "traffic", ok: true},
		{fileName: "traffic.yaml.zst", want: "traffic", ok: true},
		{fileName: "traffic.yaml.lz4", want: "traffic", ok: true},
		{fileName: "traffic.yml.br", want: "traffic", ok: true},
		{fileName: "notes.txt", ok: false},
		{fileName: "archive.gz", ok: false},
		{fileName: "README", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			t.Parallel()

			name, ok := definitionName(tt.fileName)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}
