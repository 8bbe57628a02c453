package nds

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/jyane/jnds/crc"
)

var nintendoLogo = []byte{
	0x24, 0xFF, 0xAE, 0x51, 0x69, 0x9A, 0xA2, 0x21, 0x3D, 0x84, 0x82, 0x0A,
	0x84, 0xE4, 0x09, 0xAD, 0x11, 0x24, 0x8B, 0x98, 0xC0, 0x81, 0x7F, 0x21,
	0xA3, 0x52, 0xBE, 0x19, 0x93, 0x09, 0xCE, 0x20, 0x10, 0x46, 0x4A, 0x4A,
	0xF8, 0x27, 0x31, 0xEC, 0x58, 0xC7, 0xE8, 0x33, 0x82, 0xE3, 0xCE, 0xBF,
	0x85, 0xF4, 0xDF, 0x94, 0xCE, 0x4B, 0x09, 0xC1, 0x94, 0x56, 0x8A, 0xC0,
	0x13, 0x72, 0xA7, 0xFC, 0x9F, 0x84, 0x4D, 0x73, 0xA3, 0xCA, 0x9A, 0x61,
	0x58, 0x97, 0xA3, 0x27, 0xFC, 0x03, 0x98, 0x76, 0x23, 0x1D, 0xC7, 0x61,
	0x03, 0x04, 0xAE, 0x56, 0xBF, 0x38, 0x84, 0x00, 0x40, 0xA7, 0x0E, 0xFD,
	0xFF, 0x52, 0xFE, 0x03, 0x6F, 0x95, 0x30, 0xF1, 0x97, 0xFB, 0xC0, 0x85,
	0x60, 0xD6, 0x80, 0x25, 0xA9, 0x63, 0xBE, 0x03, 0x01, 0x4E, 0x38, 0xE2,
	0xF9, 0xA2, 0x34, 0xFF, 0xBB, 0x3E, 0x03, 0x44, 0x78, 0x00, 0x90, 0xCB,
	0x88, 0x11, 0x3A, 0x94, 0x65, 0xC0, 0x7C, 0x63, 0x87, 0xF0, 0x3C, 0xAF,
	0xD6, 0x25, 0xE4, 0x8B, 0x38, 0x0A, 0xAC, 0x72, 0x21, 0xD4, 0xF8, 0x07,
}

// testHeader returns a plausible retail header.
func testHeader() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0x000:], "POKEMON D")
	copy(b[0x00C:], "ADAE")
	copy(b[0x010:], "01")
	b[0x014] = 7
	binary.LittleEndian.PutUint32(b[0x020:], 0x4000)
	binary.LittleEndian.PutUint32(b[0x068:], 0)
	binary.LittleEndian.PutUint32(b[0x080:], 0x00FF0000)
	binary.LittleEndian.PutUint32(b[0x084:], HeaderSize)
	copy(b[logoOffset:], nintendoLogo)
	binary.LittleEndian.PutUint16(b[0x15C:], 0xCF56)
	binary.LittleEndian.PutUint16(b[0x15E:], crc.CRC16(b[:headerCRCEnd]))
	return b
}

func TestParseHeaderShort(t *testing.T) {
	for _, n := range []int{0, 1, HeaderSize - 1} {
		if _, err := ParseHeader(make([]byte, n)); !errors.Is(err, ErrShortHeader) {
			t.Errorf("ParseHeader(%d bytes) error = %v, want ErrShortHeader", n, err)
		}
	}
	if _, err := ParseHeader(make([]byte, HeaderSize+1)); err != nil {
		t.Errorf("ParseHeader(513 bytes) error = %v", err)
	}
}

func TestParseHeaderFields(t *testing.T) {
	h, err := ParseHeader(testHeader())
	if err != nil {
		t.Fatal(err)
	}
	if !h.GameTitle.Equal("POKEMON D") {
		t.Errorf("GameTitle = %q", h.GameTitle)
	}
	if !h.GameCode.Equal("ADAE") || !h.MakerCode.Equal("01") {
		t.Errorf("codes = %q %q", h.GameCode, h.MakerCode)
	}
	if h.ARM9ROMOffset != 0x4000 {
		t.Errorf("ARM9ROMOffset = 0x%X, want 0x4000", h.ARM9ROMOffset)
	}
	if got := h.GameCodeU32(); got != 0x45414441 {
		t.Errorf("GameCodeU32() = 0x%08X, want 0x45414441", got)
	}
	if got := h.DeviceCapacityBytes(); got != 16<<20 {
		t.Errorf("DeviceCapacityBytes() = %d, want %d", got, 16<<20)
	}
	if region, ok := h.Region(); !ok || region != "USA" {
		t.Errorf("Region() = %q, %v", region, ok)
	}
	if maker, ok := h.Maker(); !ok || maker != "Nintendo" {
		t.Errorf("Maker() = %q, %v", maker, ok)
	}
	if h.IsDSi() || h.IsHomebrew() || !h.HasSecureArea() {
		t.Errorf("IsDSi=%v IsHomebrew=%v HasSecureArea=%v", h.IsDSi(), h.IsHomebrew(), h.HasSecureArea())
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 32; i++ {
		want := make([]byte, HeaderSize)
		rnd.Read(want)
		h, err := ParseHeader(want)
		if err != nil {
			t.Fatal(err)
		}
		got := h.Bytes()
		if !bytes.Equal(got[:], want) {
			t.Fatalf("Bytes() differs from the parsed input at iteration %d", i)
		}
	}
}

func TestReadHeader(t *testing.T) {
	want := testHeader()
	h, err := ReadHeader(bytes.NewReader(want))
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Bytes(); !bytes.Equal(got[:], want) {
		t.Error("ReadHeader() does not match ParseHeader()")
	}

	h, err = ReadHeader(strings.NewReader("NDS.TinyFB"))
	if err != nil {
		t.Fatal(err)
	}
	if !h.GameTitle.Equal("NDS.TinyFB") || h.ARM9ROMOffset != 0 {
		t.Errorf("short ReadHeader() = %q, 0x%X", h.GameTitle, h.ARM9ROMOffset)
	}
}

func TestHasSecureArea(t *testing.T) {
	for _, test := range []struct {
		offset uint32
		want   bool
	}{
		{0x0000, false},
		{0x0200, false},
		{0x3FFF, false},
		{0x4000, true},
		{0x5000, true},
		{0x7FFF, true},
		{0x8000, false},
		{0x10000, false},
	} {
		h := Header{ARM9ROMOffset: test.offset}
		if got := h.HasSecureArea(); got != test.want {
			t.Errorf("ARM9ROMOffset=0x%X, HasSecureArea() = %v, want %v", test.offset, got, test.want)
		}
	}
}

func TestIsHomebrew(t *testing.T) {
	for _, test := range []struct {
		name   string
		offset uint32
		code   string
		want   bool
	}{
		{"retail", 0x4000, "ADAE", false},
		{"low arm9", 0x200, "ADAE", true},
		{"hash code", 0x4000, "####", true},
		{"both", 0x200, "####", true},
	} {
		h := Header{ARM9ROMOffset: test.offset, GameCode: []byte(test.code)}
		if got := h.IsHomebrew(); got != test.want {
			t.Errorf("%v, IsHomebrew() = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestIsDSi(t *testing.T) {
	for unit, want := range map[uint8]bool{0x00: false, 0x01: false, 0x02: true, 0x03: true} {
		h := Header{UnitCode: unit}
		if got := h.IsDSi(); got != want {
			t.Errorf("UnitCode=0x%02X, IsDSi() = %v, want %v", unit, got, want)
		}
	}
}

func TestRegionMakerUnknown(t *testing.T) {
	h := Header{GameCode: []byte("####"), MakerCode: []byte{0xFF, 0xFE}}
	if _, ok := h.Region(); ok {
		t.Error("Region() ok for ####")
	}
	if _, ok := h.Maker(); ok {
		t.Error("Maker() ok for non-ASCII maker code")
	}
	h = Header{GameCode: []byte("AB"), MakerCode: []byte("~~")}
	if _, ok := h.Region(); ok {
		t.Error("Region() ok for short game code")
	}
	if _, ok := h.Maker(); ok {
		t.Error("Maker() ok for unknown maker code")
	}
}

func TestHeaderCRC(t *testing.T) {
	b := testHeader()
	h, _ := ParseHeader(b)
	if got := h.ComputeLogoCRC16(); got != 0xCF56 {
		t.Errorf("ComputeLogoCRC16() = 0x%04X, want 0xCF56", got)
	}
	if got, want := h.ComputeHeaderCRC16(), binary.LittleEndian.Uint16(b[0x15E:]); got != want {
		t.Errorf("ComputeHeaderCRC16() = 0x%04X, want 0x%04X", got, want)
	}

	// The header checksum must not cover itself.
	h.HeaderCRC16 ^= 0xFFFF
	if got, want := h.ComputeHeaderCRC16(), binary.LittleEndian.Uint16(b[0x15E:]); got != want {
		t.Errorf("ComputeHeaderCRC16() changed with HeaderCRC16: 0x%04X, want 0x%04X", got, want)
	}
	h.GameTitle[0] = 'X'
	if h.ComputeHeaderCRC16() == binary.LittleEndian.Uint16(b[0x15E:]) {
		t.Error("ComputeHeaderCRC16() ignores the game title")
	}
}

func TestHeaderDump(t *testing.T) {
	h, _ := ParseHeader(testHeader())
	out := h.String()
	for _, want := range []string{
		"0x000  Game title",
		"POKEMON D",
		"0x014  Device capacity                     0x07 (16 MB)",
		"0x068  Banner offset                       0x0 (None)",
		"0x15C  Nintendo logo checksum              0xCF56 (OK)",
		"0x160  Debug ROM offset                    0x0 (None)",
		"0x170  (144 bytes reserved)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q", want)
		}
	}
	if strings.Contains(out, "INVALID") {
		t.Errorf("Dump() reports an invalid checksum:\n%s", out)
	}

	h.NintendoLogoCRC16 = 0x1234
	if out := h.String(); !strings.Contains(out, "0x1234 (INVALID 0xCF56)") {
		t.Errorf("Dump() of a bad logo checksum:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestHeaderDumpError(t *testing.T) {
	h, _ := ParseHeader(testHeader())
	if err := h.Dump(failingWriter{}); err == nil {
		t.Error("Dump() to a failing writer succeeded")
	}
}
