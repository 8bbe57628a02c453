package nds

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jyane/jnds/crc"
	"github.com/jyane/jnds/filesize"
	"github.com/jyane/jnds/str"
)

// HeaderSize is the size of the cartridge header in bytes.
const HeaderSize = 512

const (
	logoOffset       = 0x0C0
	logoSize         = 156
	headerCRCEnd     = 0x15E
	reserved5Offset  = 0x170
	reserved5Size    = 144
	secureAreaStart  = 0x4000
	secureAreaEnd    = 0x8000
	homebrewGameCode = "####"
)

// The last field must end exactly at HeaderSize.
var _ = [1]struct{}{}[reserved5Offset+reserved5Size-HeaderSize]

// ErrShortHeader is returned when fewer than HeaderSize bytes are given.
var ErrShortHeader = errors.New("nds: header needs 512 bytes")

// Header is the NDS cartridge header, loaded from ROM offset 0 to 0x27FFE00
// on power-up. https://problemkaputt.de/gbatek.htm#dscartridgeheader
//
// Reserved ranges are kept verbatim so that Bytes reproduces the input.
type Header struct {
	GameTitle str.Ascii // 0x000, 12 bytes, uppercase ASCII padded with 0x00
	GameCode  str.Ascii // 0x00C, 4 bytes, NTR-{code}
	MakerCode str.Ascii // 0x010, 2 bytes, 01 is Nintendo

	UnitCode       uint8   // 0x012, 0x00 NDS, 0x02 NDS+DSi, 0x03 DSi
	DeviceType     uint8   // 0x013, encryption seed select
	DeviceCapacity uint8   // 0x014, chip size is 128KB << capacity
	Reserved1      [8]byte // 0x015
	NDSRegion      uint8   // 0x01D, 0x00 normal, 0x40 Korea, 0x80 China
	ROMVersion     uint8   // 0x01E
	Autostart      uint8   // 0x01F, bit2 skips "Press Button"

	ARM9ROMOffset    uint32 // 0x020
	ARM9EntryAddress uint32 // 0x024
	ARM9RAMAddress   uint32 // 0x028
	ARM9Size         uint32 // 0x02C

	ARM7ROMOffset    uint32 // 0x030
	ARM7EntryAddress uint32 // 0x034
	ARM7RAMAddress   uint32 // 0x038
	ARM7Size         uint32 // 0x03C

	FNTOffset uint32 // 0x040
	FNTSize   uint32 // 0x044
	FATOffset uint32 // 0x048
	FATSize   uint32 // 0x04C

	ARM9OverlayOffset uint32 // 0x050
	ARM9OverlaySize   uint32 // 0x054
	ARM7OverlayOffset uint32 // 0x058
	ARM7OverlaySize   uint32 // 0x05C

	NormalCommandSettings uint32 // 0x060, port 0x40001A4, usually 0x00586000
	KEY1CommandSettings   uint32 // 0x064, port 0x40001A4, usually 0x001808F8

	BannerOffset uint32 // 0x068, 0 for no banner

	SecureAreaCRC16 uint16 // 0x06C
	SecureAreaDelay uint16 // 0x06E, 131kHz units

	ARM9Autoload uint32 // 0x070
	ARM7Autoload uint32 // 0x074

	SecureAreaDisable uint64 // 0x078, encrypted "NmMdOnly", usually zero

	ROMSize    uint32  // 0x080, used bytes of the chip
	HeaderSize uint32  // 0x084
	Unknown1   uint32  // 0x088
	Reserved2  [8]byte // 0x08C

	NANDROMEnd  uint16   // 0x094, 0x20000 byte units
	NANDRWStart uint16   // 0x096
	Reserved3   [40]byte // 0x098

	NintendoLogo      [logoSize]byte // 0x0C0
	NintendoLogoCRC16 uint16         // 0x15C, usually 0xCF56
	HeaderCRC16       uint16         // 0x15E, CRC-16 of 0x000..0x15D

	DebugROMOffset  uint32 // 0x160
	DebugSize       uint32 // 0x164
	DebugRAMAddress uint32 // 0x168

	Reserved4 uint32              // 0x16C
	Reserved5 [reserved5Size]byte // 0x170, DSi extended header starts here
}

// ParseHeader decodes the first HeaderSize bytes of b. Any 512 bytes are a
// valid header; nothing beyond the length is checked.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	le := binary.LittleEndian
	h := Header{
		GameTitle: str.NewAscii(b[0x000:0x00C], 12),
		GameCode:  str.NewAscii(b[0x00C:0x010], 4),
		MakerCode: str.NewAscii(b[0x010:0x012], 2),

		UnitCode:       b[0x012],
		DeviceType:     b[0x013],
		DeviceCapacity: b[0x014],
		NDSRegion:      b[0x01D],
		ROMVersion:     b[0x01E],
		Autostart:      b[0x01F],

		ARM9ROMOffset:    le.Uint32(b[0x020:]),
		ARM9EntryAddress: le.Uint32(b[0x024:]),
		ARM9RAMAddress:   le.Uint32(b[0x028:]),
		ARM9Size:         le.Uint32(b[0x02C:]),

		ARM7ROMOffset:    le.Uint32(b[0x030:]),
		ARM7EntryAddress: le.Uint32(b[0x034:]),
		ARM7RAMAddress:   le.Uint32(b[0x038:]),
		ARM7Size:         le.Uint32(b[0x03C:]),

		FNTOffset: le.Uint32(b[0x040:]),
		FNTSize:   le.Uint32(b[0x044:]),
		FATOffset: le.Uint32(b[0x048:]),
		FATSize:   le.Uint32(b[0x04C:]),

		ARM9OverlayOffset: le.Uint32(b[0x050:]),
		ARM9OverlaySize:   le.Uint32(b[0x054:]),
		ARM7OverlayOffset: le.Uint32(b[0x058:]),
		ARM7OverlaySize:   le.Uint32(b[0x05C:]),

		NormalCommandSettings: le.Uint32(b[0x060:]),
		KEY1CommandSettings:   le.Uint32(b[0x064:]),

		BannerOffset: le.Uint32(b[0x068:]),

		SecureAreaCRC16: le.Uint16(b[0x06C:]),
		SecureAreaDelay: le.Uint16(b[0x06E:]),

		ARM9Autoload: le.Uint32(b[0x070:]),
		ARM7Autoload: le.Uint32(b[0x074:]),

		SecureAreaDisable: le.Uint64(b[0x078:]),

		ROMSize:    le.Uint32(b[0x080:]),
		HeaderSize: le.Uint32(b[0x084:]),
		Unknown1:   le.Uint32(b[0x088:]),

		NANDROMEnd:  le.Uint16(b[0x094:]),
		NANDRWStart: le.Uint16(b[0x096:]),

		NintendoLogoCRC16: le.Uint16(b[0x15C:]),
		HeaderCRC16:       le.Uint16(b[0x15E:]),

		DebugROMOffset:  le.Uint32(b[0x160:]),
		DebugSize:       le.Uint32(b[0x164:]),
		DebugRAMAddress: le.Uint32(b[0x168:]),

		Reserved4: le.Uint32(b[0x16C:]),
	}
	copy(h.Reserved1[:], b[0x015:0x01D])
	copy(h.Reserved2[:], b[0x08C:0x094])
	copy(h.Reserved3[:], b[0x098:0x0C0])
	copy(h.NintendoLogo[:], b[logoOffset:logoOffset+logoSize])
	copy(h.Reserved5[:], b[reserved5Offset:HeaderSize])
	return h, nil
}

// ReadHeader reads a header from r. Short input is accepted and the missing
// bytes are zero.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	for n := 0; n < HeaderSize; {
		m, err := r.Read(buf[n:])
		n += m
		if err == io.EOF {
			break
		}
		if err != nil {
			return Header{}, fmt.Errorf("reading header: %w", err)
		}
	}
	return ParseHeader(buf)
}

// Bytes encodes the header back into its 512-byte form.
func (h *Header) Bytes() [HeaderSize]byte {
	var b [HeaderSize]byte
	le := binary.LittleEndian

	copy(b[0x000:0x00C], h.GameTitle)
	copy(b[0x00C:0x010], h.GameCode)
	copy(b[0x010:0x012], h.MakerCode)
	b[0x012] = h.UnitCode
	b[0x013] = h.DeviceType
	b[0x014] = h.DeviceCapacity
	copy(b[0x015:0x01D], h.Reserved1[:])
	b[0x01D] = h.NDSRegion
	b[0x01E] = h.ROMVersion
	b[0x01F] = h.Autostart

	le.PutUint32(b[0x020:], h.ARM9ROMOffset)
	le.PutUint32(b[0x024:], h.ARM9EntryAddress)
	le.PutUint32(b[0x028:], h.ARM9RAMAddress)
	le.PutUint32(b[0x02C:], h.ARM9Size)
	le.PutUint32(b[0x030:], h.ARM7ROMOffset)
	le.PutUint32(b[0x034:], h.ARM7EntryAddress)
	le.PutUint32(b[0x038:], h.ARM7RAMAddress)
	le.PutUint32(b[0x03C:], h.ARM7Size)
	le.PutUint32(b[0x040:], h.FNTOffset)
	le.PutUint32(b[0x044:], h.FNTSize)
	le.PutUint32(b[0x048:], h.FATOffset)
	le.PutUint32(b[0x04C:], h.FATSize)
	le.PutUint32(b[0x050:], h.ARM9OverlayOffset)
	le.PutUint32(b[0x054:], h.ARM9OverlaySize)
	le.PutUint32(b[0x058:], h.ARM7OverlayOffset)
	le.PutUint32(b[0x05C:], h.ARM7OverlaySize)
	le.PutUint32(b[0x060:], h.NormalCommandSettings)
	le.PutUint32(b[0x064:], h.KEY1CommandSettings)
	le.PutUint32(b[0x068:], h.BannerOffset)
	le.PutUint16(b[0x06C:], h.SecureAreaCRC16)
	le.PutUint16(b[0x06E:], h.SecureAreaDelay)
	le.PutUint32(b[0x070:], h.ARM9Autoload)
	le.PutUint32(b[0x074:], h.ARM7Autoload)
	le.PutUint64(b[0x078:], h.SecureAreaDisable)
	le.PutUint32(b[0x080:], h.ROMSize)
	le.PutUint32(b[0x084:], h.HeaderSize)
	le.PutUint32(b[0x088:], h.Unknown1)
	copy(b[0x08C:0x094], h.Reserved2[:])
	le.PutUint16(b[0x094:], h.NANDROMEnd)
	le.PutUint16(b[0x096:], h.NANDRWStart)
	copy(b[0x098:0x0C0], h.Reserved3[:])
	copy(b[logoOffset:logoOffset+logoSize], h.NintendoLogo[:])
	le.PutUint16(b[0x15C:], h.NintendoLogoCRC16)
	le.PutUint16(b[0x15E:], h.HeaderCRC16)
	le.PutUint32(b[0x160:], h.DebugROMOffset)
	le.PutUint32(b[0x164:], h.DebugSize)
	le.PutUint32(b[0x168:], h.DebugRAMAddress)
	le.PutUint32(b[0x16C:], h.Reserved4)
	copy(b[reserved5Offset:HeaderSize], h.Reserved5[:])
	return b
}

// DeviceCapacityBytes returns the chip capacity in bytes.
func (h *Header) DeviceCapacityBytes() uint64 {
	return (128 << 10) << h.DeviceCapacity
}

// Region returns the region suffix encoded by the last game code character.
func (h *Header) Region() (string, bool) {
	code, err := h.GameCode.Decode()
	if err != nil || len(code) != 4 {
		return "", false
	}
	region, ok := regions[code[3]]
	return region, ok
}

// Maker returns the publisher named by the maker code.
func (h *Header) Maker() (string, bool) {
	code, err := h.MakerCode.Decode()
	if err != nil {
		return "", false
	}
	maker, ok := makers[code]
	return maker, ok
}

// GameCodeU32 returns the game code bytes read as a little-endian word. This
// is the KEY1 seed and the ROM parameter table key.
func (h *Header) GameCodeU32() uint32 {
	var b [4]byte
	copy(b[:], h.GameCode)
	return binary.LittleEndian.Uint32(b[:])
}

// IsDSi reports whether the unit code marks the cartridge as DSi capable.
func (h *Header) IsDSi() bool {
	return h.UnitCode&0x02 != 0
}

// IsHomebrew reports whether the cartridge looks like homebrew: either the
// ARM9 binary starts below the secure area or the game code is "####".
func (h *Header) IsHomebrew() bool {
	return h.ARM9ROMOffset < secureAreaStart || string(h.GameCode) == homebrewGameCode
}

// HasSecureArea reports whether the ARM9 binary starts inside the secure area.
func (h *Header) HasSecureArea() bool {
	return h.ARM9ROMOffset >= secureAreaStart && h.ARM9ROMOffset < secureAreaEnd
}

// ComputeLogoCRC16 computes the checksum stored in NintendoLogoCRC16.
func (h *Header) ComputeLogoCRC16() uint16 {
	return crc.CRC16(h.NintendoLogo[:])
}

// ComputeHeaderCRC16 computes the checksum stored in HeaderCRC16.
func (h *Header) ComputeHeaderCRC16() uint16 {
	b := h.Bytes()
	return crc.CRC16(b[:headerCRCEnd])
}

// crcStatus annotates a stored checksum with the result of recomputing it.
type crcStatus struct {
	stored, computed uint16
}

func (c crcStatus) String() string {
	if c.stored == c.computed {
		return "OK"
	}
	return fmt.Sprintf("INVALID 0x%04X", c.computed)
}

func noneIfZero(v uint32) string {
	if v == 0 {
		return " (None)"
	}
	return ""
}

// Dump writes every header field with its offset.
func (h *Header) Dump(w io.Writer) error {
	ew := &errWriter{w: w}
	line := func(offset int, label string, format string, args ...interface{}) {
		ew.printf("0x%03X  %-36s"+format+"\n", append([]interface{}{offset, label}, args...)...)
	}
	skip := func(offset int, label string) {
		ew.printf("0x%03X  %s\n", offset, label)
	}

	line(0x000, "Game title", "%s", h.GameTitle)
	line(0x00C, "Game code", "%s", h.GameCode)
	line(0x010, "Maker code", "%s", h.MakerCode)
	line(0x012, "Unit code", "0x%02X", h.UnitCode)
	line(0x013, "Device type", "0x%02X", h.DeviceType)
	line(0x014, "Device capacity", "0x%02X (%s)", h.DeviceCapacity, filesize.Size(h.DeviceCapacityBytes()))
	skip(0x015, "(8 bytes reserved)")
	line(0x01D, "NDS region", "0x%02X", h.NDSRegion)
	line(0x01E, "ROM version", "0x%02X", h.ROMVersion)
	line(0x01F, "Autostart", "0x%02X", h.Autostart)

	line(0x020, "ARM9 ROM offset", "0x%X", h.ARM9ROMOffset)
	line(0x024, "ARM9 entry address", "0x%X", h.ARM9EntryAddress)
	line(0x028, "ARM9 RAM address", "0x%X", h.ARM9RAMAddress)
	line(0x02C, "ARM9 code size", "0x%X", h.ARM9Size)

	line(0x030, "ARM7 ROM offset", "0x%X", h.ARM7ROMOffset)
	line(0x034, "ARM7 entry address", "0x%X", h.ARM7EntryAddress)
	line(0x038, "ARM7 RAM address", "0x%X", h.ARM7RAMAddress)
	line(0x03C, "ARM7 code size", "0x%X", h.ARM7Size)

	line(0x040, "File name table (FNT) offset", "0x%X", h.FNTOffset)
	line(0x044, "File name table (FNT) size", "0x%X", h.FNTSize)
	line(0x048, "File allocation table (FAT) offset", "0x%X", h.FATOffset)
	line(0x04C, "File allocation table (FAT) size", "0x%X", h.FATSize)

	line(0x050, "ARM9 overlay offset", "0x%X", h.ARM9OverlayOffset)
	line(0x054, "ARM9 overlay size", "0x%X", h.ARM9OverlaySize)
	line(0x058, "ARM7 overlay offset", "0x%X", h.ARM7OverlayOffset)
	line(0x05C, "ARM7 overlay size", "0x%X", h.ARM7OverlaySize)

	line(0x060, "Normal commands settings", "0x%08X", h.NormalCommandSettings)
	line(0x064, "KEY1 commands settings", "0x%08X", h.KEY1CommandSettings)

	line(0x068, "Banner offset", "0x%X%s", h.BannerOffset, noneIfZero(h.BannerOffset))

	line(0x06C, "Secure area checksum", "0x%04X", h.SecureAreaCRC16)
	line(0x06E, "Secure area delay", "0x%04X (%.0f ms)", h.SecureAreaDelay, float64(h.SecureAreaDelay)/131.0)

	line(0x070, "ARM9 autoload hook RAM address?", "0x%X", h.ARM9Autoload)
	line(0x074, "ARM7 autoload hook RAM address?", "0x%X", h.ARM7Autoload)

	line(0x078, "Secure area disable", "0x%016X", h.SecureAreaDisable)

	line(0x080, "ROM size", "0x%X", h.ROMSize)
	line(0x084, "ROM header size", "0x%X", h.HeaderSize)

	skip(0x088, "(4 bytes unknown)")
	skip(0x08C, "(8 bytes reserved)")

	line(0x094, "NAND end of ROM area", "0x%04X", h.NANDROMEnd)
	line(0x096, "NAND start of RW area", "0x%04X", h.NANDRWStart)

	skip(0x098, "(40 bytes reserved)")

	skip(0x0C0, "Nintendo logo (156 bytes)")
	line(0x15C, "Nintendo logo checksum", "0x%04X (%s)", h.NintendoLogoCRC16, crcStatus{h.NintendoLogoCRC16, h.ComputeLogoCRC16()})
	line(0x15E, "Header checksum", "0x%04X (%s)", h.HeaderCRC16, crcStatus{h.HeaderCRC16, h.ComputeHeaderCRC16()})

	line(0x160, "Debug ROM offset", "0x%X%s", h.DebugROMOffset, noneIfZero(h.DebugROMOffset))
	line(0x164, "Debug code size", "0x%X%s", h.DebugSize, noneIfZero(h.DebugSize))
	line(0x168, "Debug RAM address", "0x%X%s", h.DebugRAMAddress, noneIfZero(h.DebugRAMAddress))

	skip(0x16C, "(4 bytes reserved)")
	skip(0x170, "(144 bytes reserved)")
	return ew.err
}

func (h *Header) String() string {
	var b strings.Builder
	h.Dump(&b)
	return b.String()
}
