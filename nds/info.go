package nds

import (
	"fmt"
	"io"

	"github.com/jyane/jnds/filesize"
)

// WriteInfo writes a human readable report of r: a summary of the derived
// facts, the full header dump and the English banner text.
func WriteInfo(w io.Writer, r *Rom) error {
	h := &r.Header
	ew := &errWriter{w: w}
	field := func(name string, format string, args ...interface{}) {
		ew.printf("%-40s  "+format+"\n", append([]interface{}{name}, args...)...)
	}

	ew.printf("ROM information:\n")
	field("Game title", "%s", h.GameTitle)
	if region, ok := h.Region(); ok {
		field("Game code", "%s (NTR-%s-%s)", h.GameCode, h.GameCode, region)
	} else {
		field("Game code", "%s", h.GameCode)
	}
	if maker, ok := h.Maker(); ok {
		field("Maker code", "%s (%s)", h.MakerCode, maker)
	} else {
		field("Maker code", "%s", h.MakerCode)
	}
	field("Image size", "%s (file %s)", filesize.Size(r.Size()), filesize.Size(r.RawSize()))
	field("ROM size", "%s", filesize.Size(r.params.RomSize))
	field("Save memory", "%s", r.params.SramKind)
	field("Chip ID", "0x%08X", r.chipID)
	field("DSi", "%t", h.IsDSi())
	field("Homebrew", "%t", h.IsHomebrew())

	status := "-"
	if sum, ok := r.ComputeSecureAreaCRC16(); ok {
		status = crcStatus{h.SecureAreaCRC16, sum}.String()
	}
	field("Secure area CRC", "0x%04X (%s)", h.SecureAreaCRC16, status)
	if r.repaired {
		field("Secure area", "re-encrypted")
	}
	for _, warning := range r.warnings {
		field("Warning", "%s", warning)
	}
	if ew.err != nil {
		return ew.err
	}

	ew.printf("\nHeader information:\n")
	if ew.err != nil {
		return ew.err
	}
	if err := h.Dump(w); err != nil {
		return err
	}

	if r.Banner == nil {
		return nil
	}
	ew.printf("\n")
	return WriteBannerInfo(w, r.Banner)
}

// WriteBannerInfo writes the banner checksum and English title lines.
func WriteBannerInfo(w io.Writer, bn *Banner) error {
	ew := &errWriter{w: w}
	ew.printf("%-47s  0x%04X\n", "Banner version:", bn.Version)
	ew.printf("%-47s  0x%04X\n", "Banner CRC:", bn.CRC16[0])
	for i, line := range TitleLines(bn.Titles[English]) {
		ew.printf("%-47s  %s\n", fmt.Sprintf("English banner text, line %d:", i+1), line)
	}
	return ew.err
}
