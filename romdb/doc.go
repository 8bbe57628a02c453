// Package romdb is a table of known retail cartridges with their ROM chip
// size and save memory.
//
// The default table is built from roms.csv, embedded at compile time. Each
// row holds a game code, either four ASCII characters or a 0x-prefixed
// little-endian word, the ROM size in bytes and the save memory ordinal of
// nds.SramKind.
package romdb
