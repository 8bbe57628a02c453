package nds

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/golang/glog"
	"github.com/spf13/afero"

	"github.com/jyane/jnds/crc"
	"github.com/jyane/jnds/filesize"
	"github.com/jyane/jnds/key1"
)

const (
	chipIDBase       = 0x000000C2
	chipIDDSi        = 0x08000000
	chipIDNand       = 0x48000000
	chipIDLargeROM   = 0x80000000
	secureAreaMarker = 0xE7FFDEFF
	// secureAreaCrypt is the part of the secure area covered by KEY1.
	secureAreaCrypt = 0x800
)

var encryObj = [key1.BlockSize]byte{'e', 'n', 'c', 'r', 'y', 'O', 'b', 'j'}

// Config holds the loader configuration.
type Config struct {
	// Params resolves the cartridge parameters. When nil, or when the game is
	// unknown, the parameters are guessed from the header.
	Params ParamsTable

	// Fs is the filesystem used by Open.
	Fs afero.Fs

	// Repair enables re-encryption of decrypted secure areas.
	Repair bool
}

func defaultConfig() Config {
	return Config{
		Fs:     afero.NewOsFs(),
		Repair: true,
	}
}

// Option is a functional option for configuring the loader.
type Option func(*Config)

// WithParams sets the table used to resolve cartridge parameters.
//
// Example:
//
//	rom, err := nds.Load(data, nds.WithParams(romdb.Default()))
func WithParams(table ParamsTable) Option {
	return func(c *Config) {
		c.Params = table
	}
}

// WithFs sets the filesystem Open reads from.
func WithFs(fs afero.Fs) Option {
	return func(c *Config) {
		c.Fs = fs
	}
}

// WithoutRepair leaves decrypted secure areas as they are.
func WithoutRepair() Option {
	return func(c *Config) {
		c.Repair = false
	}
}

// Rom is a loaded cartridge image. It is not modified after Load returns and
// may be shared between goroutines.
type Rom struct {
	Header Header
	Banner *Banner

	buf      []byte
	rawSize  int
	params   RomParams
	chipID   uint32
	repaired bool
	warnings []string
}

// Open reads the file at path and loads it.
func Open(path string, opts ...Option) (*Rom, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	f, err := cfg.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading ROM %s: %w", path, err)
	}
	return Load(data, opts...)
}

// Load builds a Rom from the raw contents of a cartridge image. data is
// copied; the caller keeps ownership.
func Load(data []byte, opts ...Option) (*Rom, error) {
	if !hostLittleEndian {
		return nil, ErrUnsupportedByteOrder
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Rom{
		buf:     make([]byte, bufferSize(len(data))),
		rawSize: len(data),
	}
	copy(r.buf, data)

	var err error
	if r.Header, err = ParseHeader(r.buf); err != nil {
		return nil, err
	}
	if off := r.Header.BannerOffset; off != 0 {
		if bn, err := ParseBanner(r.buf, int(off)); err != nil {
			r.warnf("banner at 0x%X is out of bounds (ROM is %s)", off, filesize.Size(len(r.buf)))
		} else {
			r.Banner = &bn
		}
	}

	r.params = r.resolveParams(cfg.Params)
	if int(r.params.RomSize) != r.rawSize {
		r.warnf("ROM size mismatch: expected %s, file is %s",
			filesize.Size(r.params.RomSize), filesize.Size(r.rawSize))
	}
	r.chipID = r.computeChipID()

	if cfg.Repair {
		r.repairSecureArea()
	}
	glog.V(1).Infof("loaded %s (%s), chip ID 0x%08X, %s", r.Header.GameCode, filesize.Size(len(r.buf)), r.chipID, r.params.SramKind)
	return r, nil
}

// bufferSize returns the smallest power of two holding n bytes and a header.
func bufferSize(n int) int {
	if n <= HeaderSize {
		return HeaderSize
	}
	return 1 << bits.Len(uint(n-1))
}

func (r *Rom) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	glog.Warningf("%s: %s", r.Header.GameCode, msg)
	r.warnings = append(r.warnings, msg)
}

func (r *Rom) resolveParams(table ParamsTable) RomParams {
	if table != nil {
		if p, ok := table.Lookup(r.Header.GameCodeU32()); ok {
			return p
		}
	}
	p := RomParams{RomSize: uint32(len(r.buf)), SramKind: Eeprom64KB}
	if r.Header.IsHomebrew() {
		p.SramKind = SramNone
	}
	return p
}

func (r *Rom) computeChipID() uint32 {
	id := uint32(chipIDBase)
	size := uint64(r.params.RomSize)
	switch {
	case size >= 256<<20:
		id |= uint32(0x100-(size>>28)) << 8 & 0xFF00
	case size >= 1<<20 && size <= 128<<20:
		id |= uint32((size>>20)-1) << 8 & 0xFF00
	default:
		r.warnf("no chip ID size code for %s", filesize.Size(size))
	}
	if r.Header.IsDSi() {
		id |= chipIDDSi
	}
	if r.params.SramKind.MemoryKind() == MemoryNand {
		id |= chipIDNand
	} else if size >= 128<<20 {
		id |= chipIDLargeROM
	}
	return id
}

// repairSecureArea re-encrypts a secure area that was dumped decrypted. Such
// dumps start with the 0xE7FFDEFF marker that the BIOS writes over
// "encryObj" after decryption; an encrypted area, or one with the ID
// destroyed on purpose, has the marker repeated at +0x10.
func (r *Rom) repairSecureArea() {
	if !r.Header.HasSecureArea() {
		return
	}
	if len(r.buf) < secureAreaEnd || secureAreaEnd-int(r.Header.ARM9ROMOffset) < secureAreaCrypt {
		r.warnf("secure area at 0x%X is too short to check", r.Header.ARM9ROMOffset)
		return
	}
	area := r.buf[r.Header.ARM9ROMOffset:secureAreaEnd]
	le := binary.LittleEndian
	if le.Uint32(area[0x00:]) != secureAreaMarker || le.Uint32(area[0x10:]) == secureAreaMarker {
		return
	}

	glog.V(1).Infof("%s: encrypting decrypted secure area", r.Header.GameCode)
	code := r.Header.GameCodeU32()
	copy(area, encryObj[:])
	l3 := key1.New(code, key1.Level3)
	for i := 0; i < secureAreaCrypt; i += key1.BlockSize {
		l3.EncryptBlock(area[i : i+key1.BlockSize])
	}
	key1.New(code, key1.Level2).EncryptBlock(area[:key1.BlockSize])
	r.repaired = true
}

// Bytes returns the padded image. It must not be modified.
func (r *Rom) Bytes() []byte { return r.buf }

// Size returns the padded image size.
func (r *Rom) Size() int { return len(r.buf) }

// RawSize returns the size of the data Load was given.
func (r *Rom) RawSize() int { return r.rawSize }

// Params returns the resolved cartridge parameters.
func (r *Rom) Params() RomParams { return r.params }

// ChipID returns the synthetic cartridge chip ID.
func (r *Rom) ChipID() uint32 { return r.chipID }

// Repaired reports whether Load re-encrypted the secure area.
func (r *Rom) Repaired() bool { return r.repaired }

// Warnings returns the non-fatal problems found while loading.
func (r *Rom) Warnings() []string { return r.warnings }

// SecureArea returns the ARM9ROMOffset..0x8000 window, or nil when the
// cartridge has no secure area.
func (r *Rom) SecureArea() []byte {
	if !r.Header.HasSecureArea() || len(r.buf) < secureAreaEnd {
		return nil
	}
	return r.buf[r.Header.ARM9ROMOffset:secureAreaEnd]
}

// ComputeSecureAreaCRC16 computes the checksum stored in
// Header.SecureAreaCRC16. ok is false when there is no secure area.
func (r *Rom) ComputeSecureAreaCRC16() (sum uint16, ok bool) {
	area := r.SecureArea()
	if area == nil {
		return 0, false
	}
	return crc.CRC16(area), true
}
