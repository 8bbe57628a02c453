package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// quitPressed reports whether Escape or Q is held.
func quitPressed(window *glfw.Window) bool {
	return window.GetKey(glfw.KeyEscape) == glfw.Press || window.GetKey(glfw.KeyQ) == glfw.Press
}
