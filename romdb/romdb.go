package romdb

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/glog"

	"github.com/jyane/jnds/nds"
)

//go:embed roms.csv
var romsCSV []byte

var header = []string{"game_code", "rom_size", "sram_kind"}

// Table maps game codes to cartridge parameters. It implements
// nds.ParamsTable.
type Table struct {
	entries map[uint32]nds.RomParams
}

// Parse reads a table in CSV form. The first row must be the
// game_code,rom_size,sram_kind header. Unknown save memory ordinals are
// logged and read as nds.SramNone.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("romdb: empty table")
	}
	if err != nil {
		return nil, fmt.Errorf("romdb: %w", err)
	}
	for i, name := range header {
		if first[i] != name {
			return nil, fmt.Errorf("romdb: column %d is %q, want %q", i+1, first[i], name)
		}
	}

	t := &Table{entries: make(map[uint32]nds.RomParams)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("romdb: %w", err)
		}
		line, _ := cr.FieldPos(0)
		code, params, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("romdb: line %d: %w", line, err)
		}
		if _, ok := t.entries[code]; ok {
			glog.Warningf("romdb: line %d: duplicate game code %s", line, record[0])
		}
		t.entries[code] = params
	}
	return t, nil
}

func parseRecord(record []string) (uint32, nds.RomParams, error) {
	code, err := parseGameCode(record[0])
	if err != nil {
		return 0, nds.RomParams{}, err
	}
	size, err := strconv.ParseUint(record[1], 0, 32)
	if err != nil {
		return 0, nds.RomParams{}, fmt.Errorf("rom size: %w", err)
	}
	ordinal, err := strconv.Atoi(record[2])
	if err != nil {
		return 0, nds.RomParams{}, fmt.Errorf("sram kind: %w", err)
	}
	kind, ok := nds.SramKindFromOrdinal(ordinal)
	if !ok {
		glog.Warningf("romdb: unknown SRAM type 0x%08X for game code 0x%08X", ordinal, code)
	}
	return code, nds.RomParams{RomSize: uint32(size), SramKind: kind}, nil
}

// parseGameCode accepts "ADAE" or "0x45414441".
func parseGameCode(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("game code: %w", err)
		}
		return uint32(v), nil
	}
	if len(s) != 4 {
		return 0, fmt.Errorf("game code %q is not 4 characters", s)
	}
	return binary.LittleEndian.Uint32([]byte(s)), nil
}

// Lookup implements nds.ParamsTable.
func (t *Table) Lookup(gameCode uint32) (nds.RomParams, bool) {
	p, ok := t.entries[gameCode]
	return p, ok
}

// Len returns the number of known games.
func (t *Table) Len() int {
	return len(t.entries)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded table. It is parsed on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(bytes.NewReader(romsCSV))
		if err != nil {
			glog.Fatalf("romdb: embedded table: %v", err)
		}
		defaultTable = t
	})
	return defaultTable
}
