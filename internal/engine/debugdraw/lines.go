// Package debugdraw renders line-list visualizations of an evaluated
// hierarchy: node markers, parent links and aim rays. It is a debugging
// surface, not a renderer; it reads only the core's public outputs.
package debugdraw

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/solar-nl/prism/internal/engine/shader"
	"github.com/solar-nl/prism/pkg/math"
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
uniform mat4 mvp;
void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
`

const fragmentSrc = `#version 410 core
uniform vec3 color;
out vec4 fragColor;
void main() {
    fragColor = vec4(color, 1.0);
}
`

// Lines is a reusable line-list renderer. One VBO is re-specified per
// Draw call; debug vertex counts are tiny so streaming is fine.
type Lines struct {
	program  uint32
	vao      uint32
	vbo      uint32
	mvpLoc   int32
	colorLoc int32
}

// New compiles the line program and allocates GL objects.
func New() (*Lines, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("debugdraw: %w", err)
	}

	l := &Lines{
		program:  program,
		mvpLoc:   shader.GetUniform(program, "mvp"),
		colorLoc: shader.GetUniform(program, "color"),
	}

	gl.GenVertexArrays(1, &l.vao)
	gl.GenBuffers(1, &l.vbo)

	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.BindVertexArray(0)

	return l, nil
}

// Draw renders verts ([x y z] pairs per line segment) with the given MVP
// and color.
func (l *Lines) Draw(mvp math.Mat4, verts []float32, color [3]float32) {
	if len(verts) == 0 {
		return
	}

	gl.UseProgram(l.program)
	gl.UniformMatrix4fv(l.mvpLoc, 1, false, mvp.Ptr())
	gl.Uniform3f(l.colorLoc, color[0], color[1], color[2])

	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindVertexArray(0)
}

// Close releases GL objects.
func (l *Lines) Close() {
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	gl.DeleteProgram(l.program)
}

// MarkerVertices creates a three-axis cross centered on p.
// Returns 6 vertices (3 segments x 2 endpoints), format: [x, y, z] per vertex.
func MarkerVertices(p math.Vec3, size float32) []float32 {
	h := size / 2
	return []float32{
		p.X - h, p.Y, p.Z, p.X + h, p.Y, p.Z,
		p.X, p.Y - h, p.Z, p.X, p.Y + h, p.Z,
		p.X, p.Y, p.Z - h, p.X, p.Y, p.Z + h,
	}
}

// SegmentVertices creates one line segment from a to b.
func SegmentVertices(a, b math.Vec3) []float32 {
	return []float32{a.X, a.Y, a.Z, b.X, b.Y, b.Z}
}
