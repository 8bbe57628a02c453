package nds

import "fmt"

// SramKind is the kind and capacity of the save memory of a cartridge.
// The values are the ordinals used by ROM parameter data files.
type SramKind int

const (
	SramNone SramKind = iota
	Eeprom512B
	Eeprom8KB
	Eeprom64KB
	Eeprom128KB
	Flash256KB
	Flash512KB
	Flash1MB
	Nand8MB
	Nand16MB
	Nand64MB
)

// MemoryKind groups SramKinds by the technology the cartridge exposes.
type MemoryKind int

const (
	MemoryNone MemoryKind = iota
	MemoryEepromSmall
	MemoryEepromRegular
	MemoryFlash
	MemoryNand
)

// SramKindFromOrdinal returns the SramKind for a data file ordinal.
func SramKindFromOrdinal(n int) (SramKind, bool) {
	if n < int(SramNone) || n > int(Nand64MB) {
		return SramNone, false
	}
	return SramKind(n), true
}

// Size returns the capacity in bytes.
func (k SramKind) Size() int {
	switch k {
	case Eeprom512B:
		return 512
	case Eeprom8KB:
		return 8 << 10
	case Eeprom64KB:
		return 64 << 10
	case Eeprom128KB:
		return 128 << 10
	case Flash256KB:
		return 256 << 10
	case Flash512KB:
		return 512 << 10
	case Flash1MB:
		return 1 << 20
	case Nand8MB:
		return 8 << 20
	case Nand16MB:
		return 16 << 20
	case Nand64MB:
		return 64 << 20
	}
	return 0
}

// MemoryKind returns the memory technology of k.
func (k SramKind) MemoryKind() MemoryKind {
	switch k {
	case Eeprom512B:
		return MemoryEepromSmall
	case Eeprom8KB, Eeprom64KB, Eeprom128KB:
		return MemoryEepromRegular
	case Flash256KB, Flash512KB, Flash1MB:
		return MemoryFlash
	case Nand8MB, Nand16MB, Nand64MB:
		return MemoryNand
	}
	return MemoryNone
}

func (k SramKind) String() string {
	switch k {
	case SramNone:
		return "None"
	case Eeprom512B:
		return "EEPROM 512B"
	case Eeprom8KB:
		return "EEPROM 8KB"
	case Eeprom64KB:
		return "EEPROM 64KB"
	case Eeprom128KB:
		return "EEPROM 128KB"
	case Flash256KB:
		return "Flash 256KB"
	case Flash512KB:
		return "Flash 512KB"
	case Flash1MB:
		return "Flash 1MB"
	case Nand8MB:
		return "NAND 8MB"
	case Nand16MB:
		return "NAND 16MB"
	case Nand64MB:
		return "NAND 64MB"
	}
	return fmt.Sprintf("SramKind(%d)", int(k))
}

func (k MemoryKind) String() string {
	switch k {
	case MemoryNone:
		return "None"
	case MemoryEepromSmall:
		return "EEPROM (small)"
	case MemoryEepromRegular:
		return "EEPROM"
	case MemoryFlash:
		return "Flash"
	case MemoryNand:
		return "NAND"
	}
	return fmt.Sprintf("MemoryKind(%d)", int(k))
}

// RomParams are the known properties of a retail cartridge.
type RomParams struct {
	// RomSize is the size of the ROM chip in bytes.
	RomSize  uint32
	SramKind SramKind
}

// ParamsTable looks up RomParams by game code, as returned by
// Header.GameCodeU32.
type ParamsTable interface {
	Lookup(gameCode uint32) (RomParams, bool)
}

// ParamsMap is a ParamsTable backed by a map.
type ParamsMap map[uint32]RomParams

func (m ParamsMap) Lookup(gameCode uint32) (RomParams, bool) {
	p, ok := m[gameCode]
	return p, ok
}
