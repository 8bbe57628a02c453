// Package archive reads cartridge images that may be stored compressed or
// inside an archive.
package archive

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/golang/glog"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/nwaples/rardecode/v2"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"
)

// MaxRomSize bounds the decompressed size of a single image. The largest DSi
// cartridges are 512MB.
const MaxRomSize = 1 << 30

var (
	// ErrNoRom is returned when an archive holds no cartridge image.
	ErrNoRom = errors.New("archive: no ROM found")
	// ErrUnsupported is returned for unknown file extensions.
	ErrUnsupported = errors.New("archive: unsupported format")
	// ErrTooLarge is returned when an image exceeds MaxRomSize.
	ErrTooLarge = errors.New("archive: ROM too large")
)

var romExts = map[string]bool{".nds": true, ".dsi": true, ".srl": true}

type format int

const (
	formatUnknown format = iota
	formatRom
	formatZip
	format7z
	formatRar
	formatGzip
	formatXz
	formatLz4
	formatBrotli
	formatZstd
)

var formats = map[string]format{
	".zip": formatZip,
	".7z":  format7z,
	".rar": formatRar,
	".gz":  formatGzip,
	".xz":  formatXz,
	".lz4": formatLz4,
	".br":  formatBrotli,
	".zst": formatZstd,
}

func formatOf(name string) format {
	ext := strings.ToLower(filepath.Ext(name))
	if romExts[ext] {
		return formatRom
	}
	return formats[ext]
}

// IsRom reports whether name has a cartridge image extension.
func IsRom(name string) bool {
	return formatOf(name) == formatRom
}

// Supported reports whether ReadFile can read name.
func Supported(name string) bool {
	return formatOf(name) != formatUnknown
}

// ReadFile returns the cartridge image stored at path. Plain images are read
// as they are. Zip, 7z and RAR archives yield their first image entry.
// Single-file compressed streams are decompressed whole.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	kind := formatOf(path)
	if kind == formatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	defer f.Close()

	var b []byte
	switch kind {
	case formatRom:
		b, err = readAll(f)
	case formatZip, format7z:
		b, err = readArchive(kind, f)
	case formatRar:
		b, err = readRar(f)
	default:
		b, err = readStream(kind, f)
	}
	if err != nil {
		return nil, fmt.Errorf("archive: %s: %w", filepath.Base(path), err)
	}
	glog.V(1).Infof("archive: read %d bytes from %s", len(b), path)
	return b, nil
}

func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, MaxRomSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxRomSize {
		return nil, ErrTooLarge
	}
	return b, nil
}

// readArchive reads the first image of a zip or 7z archive. Both need random
// access.
func readArchive(kind format, f afero.File) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if kind == formatZip {
		return readZip(f, info.Size())
	}
	return read7z(f, info.Size())
}

func readZip(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !IsRom(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return readAll(rc)
	}
	return nil, ErrNoRom
}

func read7z(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := sevenzip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !IsRom(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return readAll(rc)
	}
	return nil, ErrNoRom
}

func readRar(r io.Reader) ([]byte, error) {
	rr, err := rardecode.NewReader(r)
	if err != nil {
		return nil, err
	}
	for {
		h, err := rr.Next()
		if err == io.EOF {
			return nil, ErrNoRom
		}
		if err != nil {
			return nil, err
		}
		if !h.IsDir && IsRom(h.Name) {
			return readAll(rr)
		}
	}
}

func readStream(kind format, r io.Reader) ([]byte, error) {
	switch kind {
	case formatGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return readAll(zr)
	case formatXz:
		zr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return readAll(zr)
	case formatLz4:
		return readAll(lz4.NewReader(r))
	case formatBrotli:
		return readAll(brotli.NewReader(r))
	case formatZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return readAll(zr)
	}
	return nil, ErrUnsupported
}
