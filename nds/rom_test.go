package nds

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jyane/jnds/crc"
	"github.com/jyane/jnds/key1"
)

const testCode = 0x45414441 // ADAE

// testImage returns a size byte image with a retail header whose ARM9 binary
// starts at arm9.
func testImage(size int, arm9 uint32) []byte {
	b := make([]byte, size)
	copy(b, testHeader())
	binary.LittleEndian.PutUint32(b[0x020:], arm9)
	return b
}

// decryptedSecureArea fills the secure area the way a decrypted dump looks.
func decryptedSecureArea(b []byte, rnd *rand.Rand) {
	rnd.Read(b[secureAreaStart:secureAreaEnd])
	binary.LittleEndian.PutUint32(b[secureAreaStart:], secureAreaMarker)
	binary.LittleEndian.PutUint32(b[secureAreaStart+4:], secureAreaMarker)
}

func TestBufferSize(t *testing.T) {
	for _, test := range []struct {
		n, want int
	}{
		{0, 512},
		{1, 512},
		{511, 512},
		{512, 512},
		{513, 1024},
		{1000, 1024},
		{0x4000, 0x4000},
		{0x4001, 0x8000},
		{16<<20 - 1, 16 << 20},
	} {
		if got := bufferSize(test.n); got != test.want {
			t.Errorf("bufferSize(%d) = %d, want %d", test.n, got, test.want)
		}
	}
}

func TestLoadPowerOfTwo(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		n := rnd.Intn(1 << 17)
		r, err := Load(make([]byte, n), WithoutRepair())
		if err != nil {
			t.Fatal(err)
		}
		size := r.Size()
		if size < 512 || size < n || size&(size-1) != 0 || (size > 512 && size/2 >= n) {
			t.Errorf("Load(%d bytes).Size() = %d", n, size)
		}
		if len(r.Bytes()) != size || r.RawSize() != n {
			t.Errorf("len(Bytes()) = %d, RawSize() = %d", len(r.Bytes()), r.RawSize())
		}
	}
}

func TestLoadCopiesInput(t *testing.T) {
	data := testImage(0x10000, 0x4000)
	decryptedSecureArea(data, rand.New(rand.NewSource(1)))
	orig := append([]byte(nil), data...)
	r, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, orig) {
		t.Error("Load() modified its input")
	}
	if bytes.Equal(r.Bytes(), orig) {
		t.Error("Load() did not repair the secure area")
	}
}

func TestLoadBigEndian(t *testing.T) {
	defer func(v bool) { hostLittleEndian = v }(hostLittleEndian)
	hostLittleEndian = false
	if _, err := Load(testHeader()); !errors.Is(err, ErrUnsupportedByteOrder) {
		t.Errorf("Load() error = %v, want ErrUnsupportedByteOrder", err)
	}
}

func TestResolveParams(t *testing.T) {
	table := ParamsMap{testCode: {RomSize: 64 << 20, SramKind: Flash512KB}}
	for _, test := range []struct {
		name  string
		arm9  uint32
		table ParamsTable
		want  RomParams
	}{
		{"table hit", 0x4000, table, RomParams{64 << 20, Flash512KB}},
		{"no table", 0x4000, nil, RomParams{0x10000, Eeprom64KB}},
		{"table miss", 0x4000, ParamsMap{}, RomParams{0x10000, Eeprom64KB}},
		{"homebrew", 0x200, nil, RomParams{0x10000, SramNone}},
	} {
		r, err := Load(testImage(0x10000, test.arm9), WithParams(test.table))
		if err != nil {
			t.Fatal(err)
		}
		if got := r.Params(); got != test.want {
			t.Errorf("%v, Params() = %+v, want %+v", test.name, got, test.want)
		}
	}
}

func hasWarning(r *Rom, substr string) bool {
	for _, w := range r.Warnings() {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestSizeMismatchWarning(t *testing.T) {
	r, _ := Load(testImage(1000, 0x200))
	if !hasWarning(r, "size mismatch") {
		t.Errorf("Warnings() = %q, want a size mismatch", r.Warnings())
	}
	r, _ = Load(testImage(1<<20, 0x200))
	if hasWarning(r, "size mismatch") || len(r.Warnings()) != 0 {
		t.Errorf("Warnings() = %q, want none", r.Warnings())
	}
	r, _ = Load(testImage(1<<20, 0x200), WithParams(ParamsMap{testCode: {RomSize: 2 << 20}}))
	if !hasWarning(r, "size mismatch") {
		t.Errorf("Warnings() = %q, want a size mismatch", r.Warnings())
	}
}

func TestChipID(t *testing.T) {
	for _, test := range []struct {
		name string
		unit uint8
		p    RomParams
		want uint32
	}{
		{"1MB", 0, RomParams{1 << 20, Eeprom8KB}, 0x000000C2},
		{"16MB", 0, RomParams{16 << 20, Eeprom64KB}, 0x00000FC2},
		{"16MB flash", 0, RomParams{16 << 20, Flash512KB}, 0x00000FC2},
		{"64MB", 0, RomParams{64 << 20, Flash512KB}, 0x00003FC2},
		{"128MB", 0, RomParams{128 << 20, Flash1MB}, 0x80007FC2},
		{"256MB", 0, RomParams{256 << 20, Flash1MB}, 0x8000FFC2},
		{"512MB", 0, RomParams{512 << 20, Eeprom128KB}, 0x8000FEC2},
		{"16MB dsi", 0x03, RomParams{16 << 20, Eeprom64KB}, 0x08000FC2},
		{"16MB nand", 0, RomParams{16 << 20, Nand16MB}, 0x48000FC2},
		{"128MB nand", 0, RomParams{128 << 20, Nand64MB}, 0x48007FC2},
		{"512MB nand", 0, RomParams{512 << 20, Nand64MB}, 0x4800FEC2},
		{"dsi nand", 0x02, RomParams{256 << 20, Nand8MB}, 0x4800FFC2},
	} {
		r := &Rom{Header: Header{UnitCode: test.unit, GameCode: []byte("ADAE")}, params: test.p}
		got := r.computeChipID()
		if got != test.want {
			t.Errorf("%v, chip ID = 0x%08X, want 0x%08X", test.name, got, test.want)
		}
		if len(r.warnings) != 0 {
			t.Errorf("%v, unexpected warnings %q", test.name, r.warnings)
		}
	}
}

func TestChipIDOutOfRange(t *testing.T) {
	for _, size := range []uint32{0, 512, 512 << 10, 192 << 20} {
		r := &Rom{Header: Header{GameCode: []byte("ADAE")}, params: RomParams{RomSize: size}}
		got := r.computeChipID()
		if got&0xFF00 != 0 || got&0xFF != 0xC2 {
			t.Errorf("size %d, chip ID = 0x%08X", size, got)
		}
		if len(r.warnings) != 1 {
			t.Errorf("size %d, warnings = %q, want one", size, r.warnings)
		}
	}
}

func TestLoadBanner(t *testing.T) {
	b := testImage(0x4000, 0x200)
	binary.LittleEndian.PutUint32(b[0x068:], 0x1000)
	copy(b[0x1000:], testBanner(1))
	r, err := Load(b)
	if err != nil {
		t.Fatal(err)
	}
	if r.Banner == nil || !r.Banner.Titles[English].Equal("Pokemon Diamond\nNintendo") {
		t.Fatalf("Banner = %+v", r.Banner)
	}

	binary.LittleEndian.PutUint32(b[0x068:], 0x3000)
	r, err = Load(b)
	if err != nil {
		t.Fatal(err)
	}
	if r.Banner != nil || !hasWarning(r, "banner") {
		t.Errorf("out of bounds banner: Banner = %v, Warnings() = %q", r.Banner != nil, r.Warnings())
	}

	r, _ = Load(testImage(0x4000, 0x200))
	if r.Banner != nil {
		t.Error("Banner decoded with a zero offset")
	}
}

// decryptSecureArea reverses the repair.
func decryptSecureArea(area []byte) {
	key1.New(testCode, key1.Level2).DecryptBlock(area[:8])
	l3 := key1.New(testCode, key1.Level3)
	for i := 0; i < secureAreaCrypt; i += 8 {
		l3.DecryptBlock(area[i : i+8])
	}
}

func TestSecureAreaRepair(t *testing.T) {
	data := testImage(0x10000, 0x4000)
	decryptedSecureArea(data, rand.New(rand.NewSource(3)))

	r, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Repaired() {
		t.Fatal("Repaired() = false")
	}
	got := r.Bytes()
	if !bytes.Equal(got[:secureAreaStart], data[:secureAreaStart]) ||
		!bytes.Equal(got[secureAreaStart+secureAreaCrypt:], data[secureAreaStart+secureAreaCrypt:]) {
		t.Error("repair touched bytes outside the encrypted window")
	}

	area := append([]byte(nil), r.SecureArea()...)
	decryptSecureArea(area)
	if string(area[:8]) != "encryObj" {
		t.Errorf("decrypted ID = %q, want encryObj", area[:8])
	}
	if !bytes.Equal(area[8:secureAreaCrypt], data[secureAreaStart+8:secureAreaStart+secureAreaCrypt]) {
		t.Error("decrypted secure area differs from the original")
	}

	// Loading a repaired image again leaves it alone.
	again, err := Load(r.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if again.Repaired() || !bytes.Equal(again.Bytes(), r.Bytes()) {
		t.Error("repair triggered twice")
	}
}

func TestSecureAreaRepairSkipped(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for _, test := range []struct {
		name    string
		arm9    uint32
		size    int
		mutate  func(b []byte)
		cut     int
		opts    []Option
		warning string
	}{
		{
			name: "marker repeated at 0x10",
			arm9: 0x4000,
			size: 0x10000,
			mutate: func(b []byte) {
				binary.LittleEndian.PutUint32(b[secureAreaStart+0x10:], secureAreaMarker)
			},
		},
		{
			name: "encrypted",
			arm9: 0x4000,
			size: 0x10000,
			mutate: func(b []byte) {
				b[secureAreaStart] = 0
			},
		},
		{
			name: "without repair",
			arm9: 0x4000,
			size: 0x10000,
			opts: []Option{WithoutRepair()},
		},
		{
			name:    "window too short",
			arm9:    0x7C00,
			size:    0x10000,
			warning: "too short",
		},
		{
			name:    "image too short",
			arm9:    0x4000,
			size:    0x10000,
			cut:     secureAreaStart,
			warning: "too short",
		},
	} {
		data := testImage(test.size, test.arm9)
		decryptedSecureArea(data, rnd)
		if test.mutate != nil {
			test.mutate(data)
		}
		if test.cut != 0 {
			data = data[:test.cut]
		}
		r, err := Load(data, test.opts...)
		if err != nil {
			t.Fatal(err)
		}
		if r.Repaired() {
			t.Errorf("%v, Repaired() = true", test.name)
		}
		if !bytes.Equal(r.Bytes()[:len(data)], data) {
			t.Errorf("%v, image changed", test.name)
		}
		if test.warning != "" && !hasWarning(r, test.warning) {
			t.Errorf("%v, Warnings() = %q, want %q", test.name, r.Warnings(), test.warning)
		}
	}
}

func TestSecureAreaCRC(t *testing.T) {
	data := testImage(0x10000, 0x4000)
	for i := secureAreaStart; i < secureAreaEnd; i++ {
		data[i] = byte(i)
	}
	r, _ := Load(data)
	sum, ok := r.ComputeSecureAreaCRC16()
	if !ok || sum != crc.CRC16(data[secureAreaStart:secureAreaEnd]) {
		t.Errorf("ComputeSecureAreaCRC16() = 0x%04X, %v", sum, ok)
	}
	if len(r.SecureArea()) != secureAreaEnd-secureAreaStart {
		t.Errorf("len(SecureArea()) = 0x%X", len(r.SecureArea()))
	}

	r, _ = Load(testImage(0x10000, 0x200))
	if r.SecureArea() != nil {
		t.Error("SecureArea() of a homebrew image is not nil")
	}
	if _, ok := r.ComputeSecureAreaCRC16(); ok {
		t.Error("ComputeSecureAreaCRC16() ok without a secure area")
	}
}

func TestOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := testImage(0x10000, 0x200)
	if err := afero.WriteFile(fs, "/roms/game.nds", data, 0644); err != nil {
		t.Fatal(err)
	}
	r, err := Open("/roms/game.nds", WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r.Bytes(), data) {
		t.Error("Open() contents differ")
	}
	if _, err := Open("/roms/missing.nds", WithFs(fs)); err == nil {
		t.Error("Open() of a missing file succeeded")
	}
}

func TestWriteInfo(t *testing.T) {
	b := testImage(0x10000, 0x4000)
	binary.LittleEndian.PutUint32(b[0x068:], 0x8000)
	copy(b[0x8000:], testBanner(1))
	r, err := Load(b, WithParams(ParamsMap{testCode: {RomSize: 0x10000, SramKind: Flash512KB}}))
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := WriteInfo(&out, r); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"ADAE (NTR-ADAE-USA)",
		"01 (Nintendo)",
		"Flash 512KB",
		"Header information:",
		"0x15E  Header checksum",
		"English banner text, line 1:                     Pokemon Diamond",
		"English banner text, line 2:                     Nintendo",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("WriteInfo() missing %q:\n%s", want, out.String())
		}
	}
}
