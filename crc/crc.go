// Package crc implements the checksums used by NDS cartridges.
package crc

import "hash/crc32"

const (
	// crc16Polynomial is the reflected form of 0x8005.
	crc16Polynomial uint16 = 0xA001
	crc16Initial    uint16 = 0xFFFF
)

var crc16Table = makeCRC16Table()

func makeCRC16Table() [256]uint16 {
	var table [256]uint16
	for i := range table {
		c := uint16(i)
		for j := 0; j < 8; j++ {
			if c&1 != 0 {
				c = (c >> 1) ^ crc16Polynomial
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

// CRC16 computes the CRC-16 checked by the DS BIOS and firmware for the
// header, the Nintendo logo, the secure area and the banner.
func CRC16(data []byte) uint16 {
	return UpdateCRC16(crc16Initial, data)
}

// UpdateCRC16 continues a CRC-16 computation started with CRC16.
func UpdateCRC16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = crc16Table[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// CRC32 computes the IEEE CRC-32 of data.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
