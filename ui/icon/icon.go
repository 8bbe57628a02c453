// Package icon turns a banner into the frames shown by the icon viewer.
package icon

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/jyane/jnds/nds"
)

// Tick is the duration unit of the DSi animation sequence.
const Tick = time.Second / 60

// Frame is one rendered step of the icon animation.
type Frame struct {
	Image    *image.RGBA
	Duration time.Duration
}

// Render draws src over an opaque background, mirrored as requested.
func Render(src *image.Paletted, flipH, flipV bool, bg color.Color) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sx, sy := x, y
			if flipH {
				sx = b.Max.X - 1 - (x - b.Min.X)
			}
			if flipV {
				sy = b.Max.Y - 1 - (y - b.Min.Y)
			}
			c := src.At(sx, sy)
			if _, _, _, a := c.RGBA(); a != 0 {
				dst.Set(x, y, c)
			}
		}
	}
	return dst
}

// Frames returns the animation of bn. Banners without a DSi sequence yield
// the static icon as a single frame with no duration.
func Frames(bn *nds.Banner, bg color.Color) []Frame {
	var seq []nds.SequenceToken
	if bn.HasAnimation() {
		seq = bn.Sequence()
	}
	if len(seq) == 0 {
		return []Frame{{Image: Render(bn.IconImage(), false, false, bg)}}
	}

	frames := make([]Frame, 0, len(seq))
	for _, tok := range seq {
		img := bn.DSiFrame(tok.Bitmap)
		// The sequence picks the palette separately from the bitmap.
		img.Palette = nds.Colors(bn.DSiPalette[tok.Palette])
		frames = append(frames, Frame{
			Image:    Render(img, tok.FlipH, tok.FlipV, bg),
			Duration: time.Duration(tok.Duration) * Tick,
		})
	}
	return frames
}

// Player steps through frames as time passes.
type Player struct {
	frames  []Frame
	current int
	elapsed time.Duration
}

// NewPlayer returns a Player positioned on the first frame.
func NewPlayer(frames []Frame) *Player {
	return &Player{frames: frames}
}

// Advance moves the animation forward by d and returns the frame to show.
// Frames with no duration are held forever.
func (p *Player) Advance(d time.Duration) Frame {
	p.elapsed += d
	for {
		f := p.frames[p.current]
		if f.Duration == 0 || p.elapsed < f.Duration {
			return f
		}
		p.elapsed -= f.Duration
		p.current = (p.current + 1) % len(p.frames)
	}
}
