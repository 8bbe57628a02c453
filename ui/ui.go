// Package ui shows the banner icon of a cartridge in a window.
package ui

import (
	"image/color"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/jnds/nds"
	"github.com/jyane/jnds/ui/icon"
)

const iconSize = 32

// background fills the transparent icon pixels, as the firmware menu does.
var background = color.RGBA{0xF8, 0xF8, 0xF8, 0xFF}

func mainLoop(window *glfw.Window, screen *screen, player *icon.Player) {
	last := time.Now()
	for range time.Tick(icon.Tick) {
		now := time.Now()
		frame := player.Advance(now.Sub(last))
		last = now

		width, height := window.GetFramebufferSize()
		screen.draw(frame.Image, width, height)
		window.SwapBuffers()
		glfw.PollEvents()
		if window.ShouldClose() || quitPressed(window) {
			return
		}
	}
}

// Start opens a window that plays the icon of banner until it is closed.
// It must be called from the main thread.
func Start(banner *nds.Banner, title string, scale int) {
	err := glfw.Init()
	if err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(iconSize*scale, iconSize*scale, title, nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	glog.V(1).Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	screen := newScreen(iconSize, iconSize)
	defer screen.delete()
	mainLoop(window, screen, icon.NewPlayer(icon.Frames(banner, background)))
}
