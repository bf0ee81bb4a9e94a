// Package renderer draws the sky, ground and sun with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/engine/lighting"
	"github.com/Faultbox/leaf-daycycle/internal/engine/shader"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws one full-screen sky pass per frame.
type Renderer struct {
	config Config
	log    *zap.Logger

	program  uint32
	vao      uint32
	uniforms map[string]int32
}

const vertexSrc = `
#version 410 core

out vec2 vUV;

void main() {
	// Full-screen triangle from the vertex index
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	vUV = pos * 2.0 - 1.0;
	gl_Position = vec4(vUV, 0.0, 1.0);
}
`

const fragmentSrc = `
#version 410 core

in vec2 vUV;
out vec4 FragColor;

uniform vec3 uZenith;
uniform vec3 uHorizon;
uniform vec3 uGround;
uniform vec3 uSunColor;
uniform vec3 uSun; // x, y, radius
uniform float uAspect;

void main() {
	vec3 color;
	if (vUV.y < 0.0) {
		color = uGround;
	} else {
		color = mix(uHorizon, uZenith, sqrt(vUV.y));
		vec2 d = vec2((vUV.x - uSun.x) * uAspect, vUV.y - uSun.y);
		float disc = 1.0 - smoothstep(uSun.z * 0.8, uSun.z, length(d));
		color = mix(color, uSunColor, disc);
	}
	FragColor = vec4(color, 1.0);
}
`

// New creates a renderer. Must be called after the GL context exists.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{config: cfg, log: log.Named("renderer")}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}
	r.uniforms = shader.Uniforms(r.program,
		"uZenith", "uHorizon", "uGround", "uSunColor", "uSun", "uAspect")

	// The vertex shader needs no attributes, but core profile needs a VAO bound
	gl.GenVertexArrays(1, &r.vao)
	gl.Disable(gl.DEPTH_TEST)
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Draw renders one frame.
func (r *Renderer) Draw(f lighting.Frame) {
	gl.ClearColor(f.Zenith.R, f.Zenith.G, f.Zenith.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform3f(r.uniforms["uZenith"], f.Zenith.R, f.Zenith.G, f.Zenith.B)
	gl.Uniform3f(r.uniforms["uHorizon"], f.Horizon.R, f.Horizon.G, f.Horizon.B)
	gl.Uniform3f(r.uniforms["uGround"], f.Ground.R, f.Ground.G, f.Ground.B)
	gl.Uniform3f(r.uniforms["uSunColor"], f.SunColor.R, f.SunColor.G, f.SunColor.B)
	gl.Uniform3f(r.uniforms["uSun"], f.SunX, f.SunY, f.SunRadius)
	gl.Uniform1f(r.uniforms["uAspect"], float32(r.config.Width)/float32(r.config.Height))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}
