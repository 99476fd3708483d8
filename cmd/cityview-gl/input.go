package main

import "github.com/go-gl/glfw/v3.3/glfw"

var mouseButtons = []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle}

// Input queues typed characters from the char callback and tracks key and
// button edges between polls.
type Input struct {
	chars     []rune
	prevKeys  map[glfw.Key]bool
	prevMouse map[glfw.MouseButton]bool
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{
		prevKeys:  make(map[glfw.Key]bool),
		prevMouse: make(map[glfw.MouseButton]bool),
	}
	window.SetCharCallback(func(_ *glfw.Window, char rune) {
		in.chars = append(in.chars, char)
	})
	return in
}

// Chars returns and clears the characters typed since the last call.
func (in *Input) Chars() []rune {
	out := in.chars
	in.chars = nil
	return out
}

func (in *Input) JustReleased(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jr := !down && in.prevKeys[key]
	in.prevKeys[key] = down
	return jr
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}
