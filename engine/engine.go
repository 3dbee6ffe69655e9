package engine

import (
	"log"
	"sync"
	"time"

	"github.com/babylon-detective/island-crisis/engine/director"
	"github.com/babylon-detective/island-crisis/engine/profiler"
	"github.com/babylon-detective/island-crisis/engine/window"
)

// engine implements the Engine interface.
// Coordinates the camera tick loop and the window message thread.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	director director.Director

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	// Pointer tracking for the captured regime. GLFW reports virtual
	// positions while the cursor is disabled, so raw deltas are derived
	// from successive samples here and handed to the input adapter as
	// pre-computed deltas.
	pointerPrevX  float64
	pointerPrevY  float64
	pointerPrimed bool
	wasCaptured   bool
}

// Engine is the main entry point for the camera core.
// It orchestrates the update loop, input routing, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Director returns the camera director driven by the update loop.
	//
	// Returns:
	//   - director.Director: the director instance
	Director() director.Director

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the update tick rate in ticks per second.
	// The director and the tick callback are advanced at this rate.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers a function called each tick before the
	// director updates. Use this for subject movement and mode hotkeys.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run starts the main loop (blocks until the window closes).
	Run()

	// Quit signals all goroutines to stop and shuts down the loop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Wires window input callbacks into the director and initializes the
// profiler with sensible defaults.
//
// Parameters:
//   - options: functional options for engine configuration (window, director, tick rate, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.director == nil {
		opts := []director.DirectorOption{}
		if e.window != nil {
			opts = append(opts, director.WithCapturePort(e.window))
		}
		e.director = director.NewDirector(opts...)
	}

	if e.window != nil {
		e.wireWindow()
	}

	return e
}

// wireWindow routes window events into the director and input adapter.
// Pointer motion is dispatched to one of two regimes depending on capture
// state: raw deltas while captured, absolute positions otherwise.
func (e *engine) wireWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		e.director.HandleResize(width, height)
	})

	e.window.SetScrollCallback(func(delta float32) {
		e.director.Zoom(delta)
	})

	e.window.SetPointerMoveCallback(func(x, y float64) {
		captured := e.window.Captured()
		if captured != e.wasCaptured {
			// Capture toggled since the last sample; the virtual position
			// jumps on the transition, so drop the stale reference point on
			// both sides of the handoff.
			e.pointerPrimed = false
			e.director.Input().ResetPointer()
			e.wasCaptured = captured
		}

		if !captured {
			e.director.Input().PointerMoved(x, y)
			return
		}

		if !e.pointerPrimed {
			e.pointerPrevX, e.pointerPrevY = x, y
			e.pointerPrimed = true
			return
		}
		dx := x - e.pointerPrevX
		dy := y - e.pointerPrevY
		e.pointerPrevX, e.pointerPrevY = x, y
		e.director.Input().PointerDelta(dx, dy)
	})

	e.window.SetPointerDownCallback(func(x, y float64) {
		// Clicking the scene re-engages capture after a manual release,
		// but only in modes that drive the camera from raw pointer deltas.
		if e.director.Mode() == director.ModeOrbit || e.window.Captured() {
			return
		}
		if err := e.window.RequestCapture(); err != nil {
			log.Printf("pointer capture request failed: %v", err)
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Director() director.Director {
	return e.director
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	rate := time.Duration(float64(time.Second) / tps)
	select {
	case e.tickRateChannel <- rate:
	default:
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
	e.director.Dispose()
}

// Quit signals all engine goroutines to stop and shuts down the loop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleTick()
	go e.handleQuit()
}

// handleTick runs the fixed-rate camera update loop in its own goroutine.
// Each tick polls the gamepad, fires the tick callback, and advances the
// director by the measured wall-clock delta. Listens for dynamic rate
// changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleTick() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.profilingEnabled {
				e.profiler.BeginTick()
			}

			if e.window != nil {
				if x, y, ok := e.window.GamepadAxes(); ok {
					e.director.Input().StickSample(x, y, dt)
				}
			}

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			e.director.Update(dt)

			if e.profilingEnabled {
				e.profiler.EndTick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit waits for the quit signal and closes the window so the
// message loop on the main thread unblocks.
func (e *engine) handleQuit() {
	defer e.wg.Done()

	<-e.quitChannel
	if e.window != nil && e.window.IsRunning() {
		if err := e.window.Close(); err != nil {
			log.Printf("error closing window: %v", err)
		}
	}
}
