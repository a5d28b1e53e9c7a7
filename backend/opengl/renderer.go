// Package opengl provides a GLFW/OpenGL 4.1 backend adapter: it owns the
// OS window, translates native input into the core event taxonomy and
// executes draw queues against the GPU.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-rtk/rtk"
)

// Renderer executes a rtk.DrawQueue against an OpenGL 4.1 context.
// Solid and textured geometry share one shader: the sampled texel is
// transformed by the per-vertex affine tint (out = tex*mul + add), with
// a 1x1 white texture standing in when a command has no texture.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	whiteTex uint32
	projLoc  int32
	texLoc   int32
	width    int
	height   int

	// uploaded textures by image identity
	textures map[rtk.ImageID]uint32
	text     *textRasterizer
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aMul;
layout (location = 2) in vec4 aAdd;
layout (location = 3) in vec2 aTexCoord;

out vec4 Mul;
out vec4 Add;
out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Mul = aMul;
    Add = aAdd;
    TexCoord = aTexCoord;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec4 Mul;
in vec4 Add;
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D tex;

void main() {
    FragColor = texture(tex, TexCoord) * Mul + Add;
}
` + "\x00"

// NewRenderer creates a renderer for a window of the given pixel size.
// The OpenGL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		textures: make(map[rtk.ImageID]uint32),
		text:     newTextRasterizer(),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("creating shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2f) + ColorOp mul (4f) + ColorOp add (4f) + TexCoord (2f)
	stride := int32(unsafe.Sizeof(rtk.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, unsafe.Offsetof(rtk.Vertex{}.Col))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(rtk.Vertex{}.Col.Add))
	gl.EnableVertexAttribArray(2)

	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, stride, unsafe.Offsetof(rtk.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)

	r.whiteTex = createWhiteTexture()

	return r, nil
}

// Resize updates the window pixel size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Execute runs the queue's draw commands. Each command's viewport is
// clipped against the visible window rectangle; fully clipped commands
// issue no GL call at all.
func (r *Renderer) Execute(q *rtk.DrawQueue) error {
	winRect := rtk.RectFromSize(rtk.Sz(uint32(r.width), uint32(r.height)))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	if len(q.Vertices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(q.Vertices)*int(unsafe.Sizeof(rtk.Vertex{})),
			gl.Ptr(q.Vertices), gl.STREAM_DRAW)

		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(q.Indices)*4,
			gl.Ptr(q.Indices), gl.STREAM_DRAW)
	}

	for _, cmd := range q.Commands {
		switch cmd := cmd.(type) {
		case rtk.ClearCmd:
			scissor, ok := cmd.Viewport.ClipInside(winRect)
			if !ok {
				continue
			}
			r.setScissor(scissor)
			gl.ClearColor(cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
			gl.Clear(gl.COLOR_BUFFER_BIT)

		case rtk.PrimCmd:
			if cmd.IdxLen == 0 {
				continue
			}
			if end := cmd.IdxOffset + cmd.IdxLen; end > len(q.Indices) {
				return fmt.Errorf("draw command references indices [%d:%d] beyond buffer length %d",
					cmd.IdxOffset, end, len(q.Indices))
			}
			scissor, ok := cmd.Viewport.ClipInside(winRect)
			if !ok {
				continue
			}
			r.setScissor(scissor)
			gl.BindTexture(gl.TEXTURE_2D, r.texture(cmd.Texture))
			gl.DrawElementsWithOffset(primitiveMode(cmd.Primitive), int32(cmd.IdxLen),
				gl.UNSIGNED_INT, uintptr(cmd.IdxOffset)*4)

		case rtk.TextCmd:
			scissor, ok := cmd.Viewport.ClipInside(winRect)
			if !ok {
				continue
			}
			r.setScissor(scissor)
			r.drawText(cmd)
		}
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.SCISSOR_TEST)

	return nil
}

// setScissor applies a viewport as the GL scissor rectangle. GL places
// the origin at the bottom-left, so the vertical axis is flipped.
func (r *Renderer) setScissor(vp rtk.Rect) {
	gl.Scissor(
		vp.X(),
		int32(r.height)-int32(vp.H())-vp.Y(),
		int32(vp.W()),
		int32(vp.H()),
	)
}

// texture resolves a draw command's texture, uploading it on first use.
// Commands without a texture share the white fallback so they run through
// the same pipeline.
func (r *Renderer) texture(img *rtk.Image) uint32 {
	if img == nil {
		return r.whiteTex
	}
	if tex, ok := r.textures[img.ID()]; ok {
		return tex
	}
	tex := uploadImage(img)
	r.textures[img.ID()] = tex
	return tex
}

// Delete releases all GL resources held by the renderer.
func (r *Renderer) Delete() {
	r.text.delete()
	for _, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// primitiveMode maps core primitive kinds to GL draw modes.
func primitiveMode(p rtk.Primitive) uint32 {
	switch p {
	case rtk.PrimitivePoints:
		return gl.POINTS
	case rtk.PrimitiveLines:
		return gl.LINES
	case rtk.PrimitiveLineStrip:
		return gl.LINE_STRIP
	case rtk.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP
	case rtk.PrimitiveTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// createWhiteTexture creates the 1x1 opaque white fallback texture with
// the sampler settings shared by all textures (nearest, repeat).
func createWhiteTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	setSamplerParams()
	white := [4]uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&white[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// uploadImage creates a GL texture from core image data.
func uploadImage(img *rtk.Image) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	setSamplerParams()

	var format int32
	switch img.Format() {
	case rtk.PixelLuma:
		format = gl.RED
	case rtk.PixelLumaA:
		format = gl.RG
	case rtk.PixelRGB:
		format = gl.RGB
	default:
		format = gl.RGBA
	}

	size := img.Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, format, int32(size.W), int32(size.H),
		0, uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels()))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func setSamplerParams() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("vertex shader compilation failed: %s", shaderLog(vertexShader))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("fragment shader compilation failed: %s", shaderLog(fragmentShader))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return string(log)
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
