// Package str implements the fixed-capacity strings stored in cartridge
// headers and banners.
//
// Both string kinds are terminated by the first zero code unit, or fill their
// whole capacity when no terminator is present. Strict decoding reports the
// position of the first invalid code unit; lossy decoding never fails and
// replaces every maximal run of invalid code units with a single U+FFFD
// REPLACEMENT CHARACTER.
package str
