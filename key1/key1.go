// Package key1 implements KEY1, the Blowfish-derived cipher that protects the
// secure area of NDS cartridges.
//
// A Cipher is keyed from the 32-bit game code and the seed table from the
// ARM7 BIOS. The BIOS derives three key levels from the same seed; the cartridge
// secure area is encrypted with level 3 and its first block a second time with
// level 2.
package key1

import "encoding/binary"

// BlockSize is the size in bytes of a KEY1 block.
const BlockSize = 8

const (
	keyDataLen = 0x412
	pLen       = 0x12
	sboxLen    = 0x100
)

// Level selects how many rounds of key derivation are applied.
type Level int

const (
	Level1 Level = iota + 1
	Level2
	Level3
)

// Cipher holds the expanded KEY1 key.
type Cipher struct {
	// buf[0x000:0x012] are the round keys P0..P17, followed by the four
	// S-boxes of 0x100 words each.
	buf [keyDataLen]uint32
}

// New derives the KEY1 state for gameCode at the given level. Levels outside
// 1..3 are clamped.
func New(gameCode uint32, level Level) *Cipher {
	c := &Cipher{buf: keyData}
	key := [3]uint32{gameCode, gameCode >> 1, gameCode << 1}

	c.applyKeycode(&key)
	if level <= Level1 {
		return c
	}
	c.applyKeycode(&key)
	if level == Level2 {
		return c
	}
	key[1] <<= 1
	key[2] >>= 1
	c.applyKeycode(&key)
	return c
}

func (c *Cipher) lookup(x uint32) uint32 {
	a := c.buf[pLen+0*sboxLen+int(x>>24)]
	b := c.buf[pLen+1*sboxLen+int((x>>16)&0xFF)]
	d := c.buf[pLen+2*sboxLen+int((x>>8)&0xFF)]
	e := c.buf[pLen+3*sboxLen+int(x&0xFF)]
	return ((a + b) ^ d) + e
}

// Encrypt runs the KEY1 rounds forward. The halves come back swapped.
func (c *Cipher) Encrypt(l, r uint32) (uint32, uint32) {
	for i := 0; i < 8; i++ {
		r ^= c.buf[2*i]
		l ^= c.lookup(r)
		l ^= c.buf[2*i+1]
		r ^= c.lookup(l)
	}
	r ^= c.buf[0x10]
	l ^= c.buf[0x11]
	return r, l
}

// Decrypt inverts Encrypt.
func (c *Cipher) Decrypt(l, r uint32) (uint32, uint32) {
	for i := 8; i >= 1; i-- {
		r ^= c.buf[2*i+1]
		l ^= c.lookup(r)
		l ^= c.buf[2*i]
		r ^= c.lookup(l)
	}
	r ^= c.buf[1]
	l ^= c.buf[0]
	return r, l
}

func (c *Cipher) expandKey(key *[3]uint32) {
	for i := 0; i < pLen; i++ {
		c.buf[i] ^= swap32(key[i&1])
	}

	var l, r uint32
	for i := 0; i < keyDataLen; i += 2 {
		l, r = c.Encrypt(l, r)
		c.buf[i] = r
		c.buf[i+1] = l
	}
}

func (c *Cipher) applyKeycode(key *[3]uint32) {
	key[1], key[2] = c.Encrypt(key[1], key[2])
	key[0], key[1] = c.Encrypt(key[0], key[1])
	c.expandKey(key)
}

// EncryptBlock encrypts the first BlockSize bytes of block in place.
func (c *Cipher) EncryptBlock(block []byte) {
	_ = block[BlockSize-1]
	l, r := c.Encrypt(binary.LittleEndian.Uint32(block[0:4]), binary.LittleEndian.Uint32(block[4:8]))
	binary.LittleEndian.PutUint32(block[0:4], l)
	binary.LittleEndian.PutUint32(block[4:8], r)
}

// DecryptBlock decrypts the first BlockSize bytes of block in place.
func (c *Cipher) DecryptBlock(block []byte) {
	_ = block[BlockSize-1]
	l, r := c.Decrypt(binary.LittleEndian.Uint32(block[0:4]), binary.LittleEndian.Uint32(block[4:8]))
	binary.LittleEndian.PutUint32(block[0:4], l)
	binary.LittleEndian.PutUint32(block[4:8], r)
}

func swap32(x uint32) uint32 {
	return x>>24 | (x>>8)&0xFF00 | (x<<8)&0xFF0000 | x<<24
}
