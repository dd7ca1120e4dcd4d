package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/solar-nl/prism/internal/config"
	"github.com/solar-nl/prism/internal/engine/clock"
	"github.com/solar-nl/prism/internal/engine/debugdraw"
	"github.com/solar-nl/prism/internal/engine/scene"
	"github.com/solar-nl/prism/internal/engine/window"
	"github.com/solar-nl/prism/internal/logger"
	"github.com/solar-nl/prism/pkg/formats"
	prismmath "github.com/solar-nl/prism/pkg/math"
)

const nodeMarkerSize = 0.5

// player owns the preview loop: one scene, one clock, one window.
type player struct {
	cfg      *config.Config
	scene    *scene.Scene
	duration float64
	loop     bool
	clk      clock.Clock
	win      *window.Window
	lines    *debugdraw.Lines
}

func newPlayer(cfg *config.Config) (*player, error) {
	doc, err := formats.Load(cfg.Playback.ScenePath)
	if err != nil {
		return nil, err
	}
	sc, err := doc.Build(logger.Log)
	if err != nil {
		return nil, err
	}
	logger.Info("scene loaded",
		zap.String("path", cfg.Playback.ScenePath),
		zap.String("name", doc.Name),
		zap.Int("nodes", sc.Len()),
	)

	p := &player{
		cfg:      cfg,
		scene:    sc,
		duration: float64(doc.Duration),
		loop:     cfg.Playback.Loop || doc.Loop,
	}

	if err := p.initClock(); err != nil {
		return nil, err
	}

	p.win, err = window.New(window.Config{
		Title:      "prism - " + doc.Name,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		p.win.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	p.lines, err = debugdraw.New()
	if err != nil {
		p.win.Close()
		return nil, err
	}

	return p, nil
}

// initClock picks the time source: the audio stream when one is
// configured, wall clock otherwise.
func (p *player) initClock() error {
	if p.cfg.Playback.AudioPath == "" {
		sys := &clock.System{}
		sys.Start()
		p.clk = sys
		return nil
	}

	f, err := os.Open(p.cfg.Playback.AudioPath)
	if err != nil {
		return fmt.Errorf("opening audio %s: %w", p.cfg.Playback.AudioPath, err)
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding audio %s: %w", p.cfg.Playback.AudioPath, err)
	}

	var src beep.Streamer = stream
	if p.loop {
		src = beep.Loop(-1, stream)
	}
	audio, err := clock.NewAudio(src, format)
	if err != nil {
		return err
	}
	p.clk = audio
	logger.Info("audio clock active", zap.String("path", p.cfg.Playback.AudioPath))
	return nil
}

// Run drives the frame loop until quit.
func (p *player) Run() error {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		t := p.normalizedTime()
		if err := p.scene.Evaluate(scene.EvalContext{Time: t}); err != nil {
			return err
		}

		p.drawFrame()
		p.win.SwapBuffers()
	}
}

// normalizedTime maps the clock reading onto clip-normalized units.
func (p *player) normalizedTime() float32 {
	t := p.clk.Now() / p.duration
	if p.loop {
		t -= math.Floor(t)
	} else if t > 1 {
		t = 1
	}
	return float32(t)
}

func (p *player) drawFrame() {
	w, h := p.win.GetSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0.05, 0.05, 0.08, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(w) / float32(h)
	proj := prismmath.Perspective(float32(math.Pi/4), aspect, 0.1, 200)
	view := prismmath.LookAt(
		prismmath.Vec3{X: 8, Y: 6, Z: 10},
		prismmath.Vec3{},
		prismmath.Vec3{Y: 1},
	)
	viewProj := proj.Mul(view)

	for i := 0; i < p.scene.Len(); i++ {
		n := p.scene.Node(i)

		p.lines.Draw(viewProj, debugdraw.MarkerVertices(n.WorldPos, nodeMarkerSize), kindColor(n.Kind))

		if n.Parent != scene.NoParent {
			parentPos := p.scene.Node(n.Parent).WorldPos
			p.lines.Draw(viewProj, debugdraw.SegmentVertices(parentPos, n.WorldPos), [3]float32{0.4, 0.4, 0.4})
		}

		if n.Target != scene.NoTarget {
			ray := n.AimDirection().Scale(2)
			p.lines.Draw(viewProj, debugdraw.SegmentVertices(n.WorldPos, n.WorldPos.Add(ray)), [3]float32{1, 0.8, 0.2})
		}
	}
}

func kindColor(k scene.NodeKind) [3]float32 {
	switch k {
	case scene.KindLight:
		return [3]float32{1, 1, 0.3}
	case scene.KindCamera:
		return [3]float32{0.3, 0.7, 1}
	case scene.KindEmitter:
		return [3]float32{1, 0.4, 0.7}
	default:
		return [3]float32{0.3, 1, 0.4}
	}
}

// Close tears the player down in reverse construction order.
func (p *player) Close() {
	if p.lines != nil {
		p.lines.Close()
	}
	if p.win != nil {
		p.win.Close()
	}
}
