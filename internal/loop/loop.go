// Package loop runs a merge-game session: it owns the physics and display
// clocks, feeds input to the game core, and draws every frame.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/mergefall/internal/draw"
	"github.com/tomz197/mergefall/internal/effect"
	"github.com/tomz197/mergefall/internal/game"
	"github.com/tomz197/mergefall/internal/input"
	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
	"github.com/tomz197/mergefall/internal/sound"
)

// Options configures a session.
type Options struct {
	// TermSizeFunc reports terminal dimensions; nil uses os.Stdout.
	TermSizeFunc draw.TermSizeFunc

	// Sound receives fuse and max-size signals; nil plays nothing.
	Sound *sound.Player

	// Rand seeds spawn randomness; nil uses a time-seeded source.
	Rand *rand.Rand
}

// Run starts the game loop with the standard Input → Update → Draw cycle
// and blocks until the player quits or the writer fails.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}

	state := NewState()
	field := physics.Field{Width: fieldWidth, Height: fieldHeight}
	state.World = physics.NewWorld(physics.Config{Field: field, Gravity: gravityStrength})

	catalog := shape.DefaultCatalog()
	g, err := game.New(game.Config{
		Engine:  state.World,
		Catalog: catalog,
		Field:   field,
		Rand:    opts.Rand,
		OnFuse: func(kind shape.Kind, tier int, x, y float64) {
			color := catalog.Tier(kind, tier).Color
			state.Particles = effect.Burst(state.Particles, x, y,
				fuseParticleBase+2*tier, fuseParticleSpeed, fuseParticleLife, color)
			opts.Sound.Fuse(tier)
		},
		OnMaxSize: func(kind shape.Kind, x, y float64) {
			state.Particles = effect.Burst(state.Particles, x, y,
				maxSizeParticles, maxSizeSpeed, maxSizeLife, draw.GrayColor(22))
			opts.Sound.MaxSize()
		},
	})
	if err != nil {
		return err
	}
	state.Game = g
	g.Start()

	stream := input.StartStream(r)
	out := draw.NewChunkWriter(w, 0, 0)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termW, termH, _ := opts.TermSizeFunc()
	cols, rows, offC, offR := fitCanvas(termW, termH)
	canvas := draw.NewScaledCanvas(cols, rows, fieldWidth, fieldHeight)
	canvas.SetOffset(offC, offR)
	state.lastTermW, state.lastTermH = termW, termH

	lastTime := time.Now()
	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state, stream)

		// ===== UPDATE PHASE =====
		if err := updateScreen(state, canvas, out, opts.TermSizeFunc); err != nil {
			return err
		}
		stepSimulation(state)

		// ===== DRAW PHASE =====
		if err := drawFrame(state, out, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput drains pending input and forwards lateral presses while a
// shape is controlled.
func processInput(state *State, stream *input.Stream) {
	inp := input.ReadInput(stream)
	state.Input = inp

	if inp.Quit {
		state.Running = false
		return
	}
	if inp.Left {
		state.Game.Move(game.MoveLeft)
	}
	if inp.Right {
		state.Game.Move(game.MoveRight)
	}
}

// stepSimulation advances the fixed-step physics clock to catch up with
// display time, then runs one display tick of the controller and the
// particle effects.
func stepSimulation(state *State) {
	dt := state.Delta.Seconds()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	state.accumulator += dt
	for state.accumulator >= physicsDT {
		state.Game.StepPhysics(physicsDT)
		state.accumulator -= physicsDT
	}

	state.Game.Tick()
	state.Particles = effect.UpdateAll(state.Particles, state.Delta.Seconds())
}

// updateScreen refits the canvas when the terminal changed size.
func updateScreen(state *State, canvas *draw.Canvas, out *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) error {
	termW, termH, err := sizeFunc()
	if err != nil {
		return err
	}
	if termW == state.lastTermW && termH == state.lastTermH {
		return nil
	}
	state.lastTermW, state.lastTermH = termW, termH

	cols, rows, offC, offR := fitCanvas(termW, termH)
	canvas.Resize(cols, rows)
	canvas.SetOffset(offC, offR)
	draw.ClearScreen(out)
	return nil
}

// fitCanvas fits the field into the terminal at a 3:1 column/row aspect
// (the field is 120 units wide and 40 rows tall), centered, with one row
// above the canvas kept for the HUD.
func fitCanvas(termW, termH int) (cols, rows, offC, offR int) {
	rows = termH - 1
	if rows < 1 {
		rows = 1
	}
	if rows*3 > termW {
		rows = termW / 3
		if rows < 1 {
			rows = 1
		}
	}
	cols = rows * 3
	offC = (termW - cols) / 2
	offR = (termH - rows + 1) / 2
	return cols, rows, offC, offR
}
