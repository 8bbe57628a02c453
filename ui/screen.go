package ui

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// screen is a texture attached to a framebuffer. Frames are uploaded to the
// texture and blitted to the window, so no shader program is needed.
type screen struct {
	texture     uint32
	framebuffer uint32
	width       int32
	height      int32
}

func newScreen(width, height int) *screen {
	s := &screen{width: int32(width), height: int32(height)}
	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, s.width, s.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenFramebuffers(1, &s.framebuffer)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.framebuffer)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.texture, 0)
	return s
}

// draw uploads img and stretches it over the whole window. Image rows run top
// to bottom while GL rows run bottom to top, so the blit flips vertically.
func (s *screen) draw(img *image.RGBA, width, height int) {
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, s.width, s.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.framebuffer)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BlitFramebuffer(0, 0, s.width, s.height, 0, int32(height), int32(width), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (s *screen) delete() {
	gl.DeleteFramebuffers(1, &s.framebuffer)
	gl.DeleteTextures(1, &s.texture)
}
