// Package nds decodes Nintendo DS cartridge images.
//
// A Rom is loaded from raw bytes or from a file. Loading pads the image to a
// power of two, decodes the header and the optional banner, resolves the
// cartridge parameters, derives the chip ID and re-encrypts a decrypted
// secure area so that the image can be served like a retail cartridge.
package nds
