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
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// overlay draws lines of text in the top-left corner of the window using
// Dear ImGui and the fixed function pipeline.
type overlay struct {
	context *imgui.Context
	io      imgui.IO
	font    uint32

	lines []string
}

func newOverlay() *overlay {
	ovl := &overlay{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
	}

	// the overlay has no windows that need remembering
	ovl.io.SetIniFilename("")

	fonts := ovl.io.Fonts()
	fonts.AddFontDefault()
	image := fonts.TextureDataRGBA32()

	gl.GenTextures(1, &ovl.font)
	gl.BindTexture(gl.TEXTURE_2D, ovl.font)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	fonts.SetTextureID(imgui.TextureID(ovl.font))

	return ovl
}

func (ovl *overlay) set(lines []string) {
	ovl.lines = lines
}

func (ovl *overlay) visible() bool {
	return len(ovl.lines) > 0
}

func (ovl *overlay) destroy() {
	gl.DeleteTextures(1, &ovl.font)
	if ovl.context != nil {
		ovl.context.Destroy()
		ovl.context = nil
	}
}

// render the overlay. the window size is in screen coordinates and the
// framebuffer size is in physical pixels
func (ovl *overlay) render(winSize [2]float32, fbSize [2]float32) {
	if winSize[0] <= 0 || winSize[1] <= 0 || fbSize[0] <= 0 || fbSize[1] <= 0 {
		return
	}

	ovl.io.SetDisplaySize(imgui.Vec2{X: winSize[0], Y: winSize[1]})
	imgui.NewFrame()

	imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})
	imgui.BeginV("##statsOverlay", nil, imgui.WindowFlagsAlwaysAutoResize|
		imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoTitleBar|
		imgui.WindowFlagsNoDecoration|imgui.WindowFlagsNoSavedSettings|
		imgui.WindowFlagsNoBringToFrontOnFocus)
	for _, l := range ovl.lines {
		imgui.Text(l)
	}
	imgui.End()

	imgui.Render()

	ovl.draw(imgui.RenderedDrawData(), winSize, fbSize)
}

// draw the imgui draw lists with the fixed function pipeline. the GL state
// that is changed is restored before returning
func (ovl *overlay) draw(data imgui.DrawData, winSize [2]float32, fbSize [2]float32) {
	data.ScaleClipRects(imgui.Vec2{X: fbSize[0] / winSize[0], Y: fbSize[1] / winSize[1]})

	var saved struct {
		texture  int32
		viewport [4]int32
		scissor  [4]int32
	}
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &saved.texture)
	gl.GetIntegerv(gl.VIEWPORT, &saved.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &saved.scissor[0])
	defer func() {
		gl.BindTexture(gl.TEXTURE_2D, uint32(saved.texture))
		gl.Viewport(saved.viewport[0], saved.viewport[1], saved.viewport[2], saved.viewport[3])
		gl.Scissor(saved.scissor[0], saved.scissor[1], saved.scissor[2], saved.scissor[3])
	}()

	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT | gl.TRANSFORM_BIT)
	defer gl.PopAttrib()

	gl.UseProgram(0)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Enable(gl.TEXTURE_2D)
	for _, c := range []uint32{gl.CULL_FACE, gl.DEPTH_TEST, gl.LIGHTING, gl.COLOR_MATERIAL} {
		gl.Disable(c)
	}

	arrays := []uint32{gl.VERTEX_ARRAY, gl.TEXTURE_COORD_ARRAY, gl.COLOR_ARRAY}
	for _, a := range arrays {
		gl.EnableClientState(a)
	}
	defer func() {
		for _, a := range arrays {
			gl.DisableClientState(a)
		}
	}()

	// orthographic projection with the origin in the top-left corner
	gl.Viewport(0, 0, int32(fbSize[0]), int32(fbSize[1]))
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(winSize[0]), float64(winSize[1]), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()
	defer func() {
		gl.MatrixMode(gl.MODELVIEW)
		gl.PopMatrix()
		gl.MatrixMode(gl.PROJECTION)
		gl.PopMatrix()
	}()

	stride, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	idxSize := imgui.IndexBufferLayout()

	idxType := uint32(gl.UNSIGNED_SHORT)
	if idxSize == 4 {
		idxType = gl.UNSIGNED_INT
	}

	for _, list := range data.CommandLists() {
		vtx, _ := list.VertexBuffer()
		idx, _ := list.IndexBuffer()
		offset := uintptr(idx)

		gl.VertexPointer(2, gl.FLOAT, int32(stride), unsafe.Add(vtx, posOffset))
		gl.TexCoordPointer(2, gl.FLOAT, int32(stride), unsafe.Add(vtx, uvOffset))
		gl.ColorPointer(4, gl.UNSIGNED_BYTE, int32(stride), unsafe.Add(vtx, colOffset))

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), int32(fbSize[1]-clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), idxType, offset)
			}
			offset += uintptr(cmd.ElementCount() * idxSize)
		}
	}
}
