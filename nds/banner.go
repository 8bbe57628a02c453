package nds

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"strings"

	"golang.org/x/text/language"

	"github.com/jyane/jnds/str"
)

// BannerSize is the size of the icon/title banner in bytes, including the
// DSi animation block.
const BannerSize = 9152

const (
	titleUnits    = 128
	titleCount    = 8
	iconSize      = 512
	paletteLen    = 16
	dsiFrames     = 8
	sequenceLen   = 64
	iconDim       = 32
	tileDim       = 8
	tilesPerRow   = iconDim / tileDim
	tileBytes     = tileDim * tileDim / 2
	bannerTitles  = 0x0240
	bannerDSiIcon = 0x1240
	bannerDSiPal  = 0x2240
	bannerDSiSeq  = 0x2340
)

// The DSi sequence must end exactly at BannerSize.
var _ = [1]struct{}{}[bannerDSiSeq+sequenceLen*2-BannerSize]

// ErrShortBanner is returned when the buffer cannot hold a banner at the
// requested offset.
var ErrShortBanner = errors.New("nds: banner does not fit in buffer")

// Title languages in the order they are stored.
const (
	Japanese = iota
	English
	French
	German
	Italian
	Spanish
	Chinese
	Korean
)

var titleTags = [titleCount]language.Tag{
	language.Japanese,
	language.English,
	language.French,
	language.German,
	language.Italian,
	language.Spanish,
	language.Chinese,
	language.Korean,
}

// Banner holds the icon and localized titles shown by the firmware menu.
// https://problemkaputt.de/gbatek.htm#dscartridgeiconstitle
type Banner struct {
	Version    uint16                // 0x0000, 1 original, 2 +Chinese, 3 +Korean, 0x103 +DSi
	CRC16      [4]uint16             // 0x0002, over 0x20..0x83F, 0x93F, 0xA3F, 0x1240..0x23BF
	Reserved1  [22]byte              // 0x000A
	Icon       [iconSize]byte        // 0x0020, 4bpp 8x8 tiles
	Palette    [paletteLen]uint16    // 0x0220, BGR555, colour 0 transparent
	Titles     [titleCount]str.UTF16 // 0x0240, 128 units each
	Reserved2  [2048]byte            // 0x0A40
	DSiIcon    [dsiFrames][iconSize]byte
	DSiPalette [dsiFrames][paletteLen]uint16
	DSiSeq     [sequenceLen]uint16
}

// ParseBanner decodes the banner starting at offset in b.
func ParseBanner(b []byte, offset int) (Banner, error) {
	if offset < 0 || len(b) < offset+BannerSize {
		return Banner{}, ErrShortBanner
	}
	b = b[offset : offset+BannerSize]

	le := binary.LittleEndian
	var bn Banner
	bn.Version = le.Uint16(b[0x0000:])
	for i := range bn.CRC16 {
		bn.CRC16[i] = le.Uint16(b[0x0002+i*2:])
	}
	copy(bn.Reserved1[:], b[0x000A:0x0020])
	copy(bn.Icon[:], b[0x0020:0x0220])
	readPalette(&bn.Palette, b[0x0220:])
	for i := range bn.Titles {
		title := make(str.UTF16, titleUnits)
		base := bannerTitles + i*titleUnits*2
		for j := range title {
			title[j] = le.Uint16(b[base+j*2:])
		}
		bn.Titles[i] = title
	}
	copy(bn.Reserved2[:], b[0x0A40:bannerDSiIcon])
	for i := range bn.DSiIcon {
		copy(bn.DSiIcon[i][:], b[bannerDSiIcon+i*iconSize:])
		readPalette(&bn.DSiPalette[i], b[bannerDSiPal+i*paletteLen*2:])
	}
	for i := range bn.DSiSeq {
		bn.DSiSeq[i] = le.Uint16(b[bannerDSiSeq+i*2:])
	}
	return bn, nil
}

func readPalette(p *[paletteLen]uint16, b []byte) {
	for i := range p {
		p[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
}

// HasChinese reports whether the Chinese title slot is populated.
func (bn *Banner) HasChinese() bool { return bn.Version&0xFF >= 2 }

// HasKorean reports whether the Korean title slot is populated.
func (bn *Banner) HasKorean() bool { return bn.Version&0xFF >= 3 }

// HasAnimation reports whether the DSi animated icon block is in use.
func (bn *Banner) HasAnimation() bool { return bn.Version >= 0x0103 }

func (bn *Banner) titleCount() int {
	switch {
	case bn.HasKorean():
		return Korean + 1
	case bn.HasChinese():
		return Chinese + 1
	default:
		return Spanish + 1
	}
}

// Title returns the title whose language best matches tag. Slots the banner
// version does not carry are never picked; English is the fallback.
func (bn *Banner) Title(tag language.Tag) str.UTF16 {
	n := bn.titleCount()
	// The matcher treats its first entry as the default.
	supported := make([]language.Tag, 0, n)
	index := make([]int, 0, n)
	supported = append(supported, titleTags[English])
	index = append(index, English)
	for i := 0; i < n; i++ {
		if i == English {
			continue
		}
		supported = append(supported, titleTags[i])
		index = append(index, i)
	}
	_, i, _ := language.NewMatcher(supported).Match(tag)
	return bn.Titles[index[i]]
}

// TitleLines splits a title into its lines. Trailing NULs are dropped.
func TitleLines(s str.UTF16) []string {
	return strings.Split(s.String(), "\n")
}

// Colors converts a BGR555 palette. Colour 0 is transparent.
func Colors(p [paletteLen]uint16) color.Palette {
	pal := make(color.Palette, paletteLen)
	for i, c := range p {
		r := uint8(c & 0x1F)
		g := uint8(c >> 5 & 0x1F)
		b := uint8(c >> 10 & 0x1F)
		pal[i] = color.NRGBA{R: r<<3 | r>>2, G: g<<3 | g>>2, B: b<<3 | b>>2, A: 0xFF}
	}
	pal[0] = color.NRGBA{}
	return pal
}

// decodeIcon lays out 16 tiles of 8x8 pixels, four per row. Within a tile
// each byte holds two pixels, the low nibble being the left one.
func decodeIcon(bitmap *[iconSize]byte, palette [paletteLen]uint16) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, iconDim, iconDim), Colors(palette))
	for tile := 0; tile < tilesPerRow*tilesPerRow; tile++ {
		tx := tile % tilesPerRow * tileDim
		ty := tile / tilesPerRow * tileDim
		for y := 0; y < tileDim; y++ {
			for x := 0; x < tileDim; x += 2 {
				v := bitmap[tile*tileBytes+y*tileDim/2+x/2]
				img.SetColorIndex(tx+x, ty+y, v&0x0F)
				img.SetColorIndex(tx+x+1, ty+y, v>>4)
			}
		}
	}
	return img
}

// IconImage decodes the static 32x32 icon.
func (bn *Banner) IconImage() *image.Paletted {
	return decodeIcon(&bn.Icon, bn.Palette)
}

// DSiFrame decodes the i-th DSi animation bitmap with the i-th palette.
func (bn *Banner) DSiFrame(i int) *image.Paletted {
	return decodeIcon(&bn.DSiIcon[i], bn.DSiPalette[i])
}

// SequenceToken is one step of the DSi icon animation.
type SequenceToken struct {
	FlipV    bool
	FlipH    bool
	Palette  int
	Bitmap   int
	Duration int // in 60Hz frames
}

// Sequence decodes the DSi animation up to the terminating zero token.
func (bn *Banner) Sequence() []SequenceToken {
	var seq []SequenceToken
	for _, v := range bn.DSiSeq {
		if v == 0 {
			break
		}
		seq = append(seq, SequenceToken{
			FlipV:    v&0x8000 != 0,
			FlipH:    v&0x4000 != 0,
			Palette:  int(v >> 11 & 0x7),
			Bitmap:   int(v >> 8 & 0x7),
			Duration: int(v & 0xFF),
		})
	}
	return seq
}
