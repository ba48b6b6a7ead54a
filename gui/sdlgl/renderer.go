// This file is part of glcanvas.
//
// glcanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glcanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glcanvas.  If not, see <https://www.gnu.org/licenses/>.

package sdlgl

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/glcanvas/canvas"
	"github.com/jetsetilly/glcanvas/logger"
)

// the quad covers the whole viewport and is drawn as a triangle strip. the
// texture coordinates flip the image so that the first row of the image
// appears at the top of the window
var (
	quadPositions = []float32{
		-1, -1,
		-1, +1,
		+1, -1,
		+1, +1,
	}
	quadTexcoords = []float32{
		1, 1,
		1, 0,
		0, 1,
		0, 0,
	}
)

const quadVertices = 4

type renderer struct {
	program  uint32
	position int32
	texcoord int32
	texture  int32

	buffers [2]uint32

	tex uint32

	// size of the texture. the zero value means the texture has not been
	// allocated yet
	texWidth  int
	texHeight int

	viewport [4]int32
}

func newRenderer(interp canvas.Interpolation) (*renderer, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl21: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "glsl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "glsl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "glsl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rnd := &renderer{}

	err = rnd.createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("gl21: %w", err)
	}

	gl.GenBuffers(2, &rnd.buffers[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.buffers[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(quadPositions)*4, gl.Ptr(quadPositions), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.buffers[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(quadTexcoords)*4, gl.Ptr(quadTexcoords), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &rnd.tex)
	gl.BindTexture(gl.TEXTURE_2D, rnd.tex)
	filter := int32(gl.NEAREST)
	if interp == canvas.Linear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return rnd, nil
}

// compile and link the shader program.
func (rnd *renderer) createProgram(vertProgram string, fragProgram string) error {
	rnd.program = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := shaderCompileError(vertHandle); log != "" {
		return fmt.Errorf("vertex shader: %s", log)
	}

	gl.CompileShader(fragHandle)
	if log := shaderCompileError(fragHandle); log != "" {
		return fmt.Errorf("fragment shader: %s", log)
	}

	gl.AttachShader(rnd.program, vertHandle)
	gl.AttachShader(rnd.program, fragHandle)
	gl.LinkProgram(rnd.program)

	// now that the shader program has linked we no longer need the
	// individual shaders
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	var linked int32
	gl.GetProgramiv(rnd.program, gl.LINK_STATUS, &linked)
	if linked == 0 {
		return fmt.Errorf("shader program did not link")
	}

	rnd.position = gl.GetAttribLocation(rnd.program, gl.Str("position"+"\x00"))
	rnd.texcoord = gl.GetAttribLocation(rnd.program, gl.Str("texcoord"+"\x00"))
	rnd.texture = gl.GetUniformLocation(rnd.program, gl.Str("texture"+"\x00"))

	return nil
}

// shaderCompileError returns the most recent error generated by the shader
// compiler.
func shaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}

func (rnd *renderer) setViewport(viewport [4]int32) {
	rnd.viewport = viewport
	gl.Viewport(viewport[0], viewport[1], viewport[2], viewport[3])
}

// upload replaces the contents of the texture. the texture is allocated on
// the first upload and whenever the size of the image changes
func (rnd *renderer) upload(pixels *image.RGBA) error {
	width := pixels.Bounds().Dx()
	height := pixels.Bounds().Dy()
	if width == 0 || height == 0 {
		return fmt.Errorf("gl21: empty image")
	}

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pixels.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.BindTexture(gl.TEXTURE_2D, rnd.tex)

	if width != rnd.texWidth || height != rnd.texHeight {
		rnd.texWidth = width
		rnd.texHeight = height
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pixels.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pixels.Pix))
	}

	return rnd.err()
}

// draw clears the framebuffer and draws the textured quad
func (rnd *renderer) draw() {
	gl.Viewport(rnd.viewport[0], rnd.viewport[1], rnd.viewport[2], rnd.viewport[3])
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if rnd.texWidth == 0 {
		return
	}

	gl.UseProgram(rnd.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.tex)
	gl.Uniform1i(rnd.texture, 0)

	gl.EnableVertexAttribArray(uint32(rnd.position))
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.buffers[0])
	gl.VertexAttribPointerWithOffset(uint32(rnd.position), 2, gl.FLOAT, false, 0, 0)

	gl.EnableVertexAttribArray(uint32(rnd.texcoord))
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.buffers[1])
	gl.VertexAttribPointerWithOffset(uint32(rnd.texcoord), 2, gl.FLOAT, false, 0, 0)

	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, quadVertices)

	gl.DisableVertexAttribArray(uint32(rnd.texcoord))
	gl.DisableVertexAttribArray(uint32(rnd.position))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)
}

// err returns the most recent OpenGL error, if there is one
func (rnd *renderer) err() error {
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl21: error %#04x", e)
	}
	return nil
}

func (rnd *renderer) destroy() {
	gl.DeleteTextures(1, &rnd.tex)
	gl.DeleteBuffers(2, &rnd.buffers[0])
	if rnd.program != 0 {
		gl.DeleteProgram(rnd.program)
		rnd.program = 0
	}
}
