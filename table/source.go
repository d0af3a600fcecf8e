package table

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"facette.io/natsort"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/amp-labs/amp-automata/closer"
)

// Source provides named definitions. Implementations decide where the
// YAML lives; callers only see names.
type Source interface {
	// Load returns the definition stored under name.
	Load(name string) (*Definition, error)

	// List returns the available definition names in natural sort
	// order, so "machine2" comes before "machine10".
	List() ([]string, error)
}

// DirSource reads definitions from a directory of .yaml/.yml files.
// Compressed variants (.yaml.gz, .yaml.zst, .yaml.lz4, .yaml.br) are
// decompressed transparently. Product constructions multiply state
// counts, so generated definitions usually ship compressed.
type DirSource struct {
	dir string
}

// NewDirSource creates a source over the given directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load finds the file whose definition name matches and parses it. When
// both a plain and a compressed variant exist, the naturally first file
// name wins.
func (s *DirSource) Load(name string) (*Definition, error) {
	entries, err := s.fileNames()
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		candidate, ok := definitionName(entry)
		if !ok || candidate != name {
			continue
		}

		data, err := readDefinitionFile(filepath.Join(s.dir, entry))
		if err != nil {
			return nil, err
		}

		return Parse(data)
	}

	return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, name)
}

// List returns every definition name in the directory, deduplicated
// across plain and compressed variants.
func (s *DirSource) List() ([]string, error) {
	entries, err := s.fileNames()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name, ok := definitionName(entry)
		if !ok || seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	natsort.Sort(names)

	return names, nil
}

// fileNames returns the directory's file names in natural sort order.
func (s *DirSource) fileNames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition directory %q: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	natsort.Sort(names)

	return names, nil
}

// compressionExts maps recognized compression extensions.
var compressionExts = map[string]bool{
	".gz":  true,
	".zst": true,
	".lz4": true,
	".br":  true,
}

// definitionName maps a file name to the definition name it stores.
// "traffic.yaml.gz" and "traffic.yml" both map to "traffic". Files that
// are not YAML definitions report ok false.
func definitionName(fileName string) (string, bool) {
	rest := fileName

	if ext := strings.ToLower(filepath.Ext(rest)); compressionExts[ext] {
		rest = strings.TrimSuffix(rest, filepath.Ext(rest))
	}

	switch strings.ToLower(filepath.Ext(rest)) {
	case ".yaml", ".yml":
		return strings.TrimSuffix(rest, filepath.Ext(rest)), true
	default:
		return "", false
	}
}

// readDefinitionFile reads a definition file, decompressing by
// extension. The decompressor closes before the file underneath it.
func readDefinitionFile(path string) ([]byte, error) {
	file, err := os.Open(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to open definition file %q: %w", path, err)
	}

	resources := closer.NewCloser()

	reader, err := decodeReader(file, path, resources)
	if err != nil {
		_ = file.Close()

		return nil, err
	}

	resources.Add(file)

	data, err := io.ReadAll(reader)
	if err != nil {
		_ = resources.Close()

		return nil, fmt.Errorf("failed to read definition file %q: %w", path, err)
	}

	err = resources.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to close definition file %q: %w", path, err)
	}

	return data, nil
}

// decodeReader wraps file in the decompressor its extension calls for.
// Decompressors that need closing are registered with resources.
func decodeReader(file io.Reader, path string, resources *closer.Closer) (io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		return file, nil
	case ".gz":
		reader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %q: %w", path, err)
		}

		resources.Add(reader)

		return reader, nil
	case ".zst":
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream %q: %w", path, err)
		}

		resources.Add(closer.CustomCloser(func() error {
			decoder.Close()

			return nil
		}))

		return decoder, nil
	case ".lz4":
		return lz4.NewReader(file), nil
	case ".br":
		return brotli.NewReader(file), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, ext)
	}
}
