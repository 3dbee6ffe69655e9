package input

import (
	"math"
	"sync"

	"github.com/babylon-detective/island-crisis/common"
)

// pitchLimit is the hard bound on accumulated pitch, applied after every
// ingest regardless of source.
const pitchLimit = float32(math.Pi / 2)

// Adapter normalizes pointing-device and controller-stick input into
// yaw/pitch look angles. Pointer and stick are independent producers feeding
// the same accumulators; either can drive the camera and neither excludes
// the other.
//
// Sign convention: pointer motion to the right decreases yaw, pointer motion
// up increases pitch. Stick axes follow the same convention with up reported
// as negative Y, matching GLFW gamepad axes.
//
// Event handlers only stage values here; follow controllers drain the
// per-frame deltas (or read the absolute angles) once per update tick.
type Adapter interface {
	// PointerMoved ingests an absolute pointer position sample (non-exclusive
	// input regime). Deltas are derived from successive samples; the first
	// sample after a reset is discarded because no prior sample exists.
	//
	// Parameters:
	//   - x, y: absolute pointer position in screen coordinates
	PointerMoved(x, y float64)

	// PointerDelta ingests a raw pointer motion delta (exclusive-capture
	// input regime).
	//
	// Parameters:
	//   - dx, dy: raw motion deltas in screen coordinates
	PointerDelta(dx, dy float64)

	// StickSample ingests one controller stick sample. The angular delta is
	// scaled by the elapsed frame time and the configured stick rate so the
	// angular velocity is consistent regardless of polling frequency.
	// Samples inside the dead zone are ignored.
	//
	// Parameters:
	//   - x, y: stick deflection in [-1, 1] per axis
	//   - dt: elapsed frame time in seconds
	StickSample(x, y float32, dt float32)

	// Yaw returns the accumulated horizontal look angle in radians.
	//
	// Returns:
	//   - float32: the accumulated yaw
	Yaw() float32

	// Pitch returns the accumulated vertical look angle in radians,
	// always within [-π/2, π/2].
	//
	// Returns:
	//   - float32: the accumulated pitch
	Pitch() float32

	// SetAngles overwrites the accumulated yaw and pitch. Pitch is clamped.
	// Used when a mode switch needs the accumulators to match a snapped pose.
	//
	// Parameters:
	//   - yaw: new yaw in radians
	//   - pitch: new pitch in radians
	SetAngles(yaw, pitch float32)

	// ConsumeDeltas drains the per-frame yaw/pitch delta sink, returning the
	// deltas accumulated since the previous call and resetting them to zero.
	//
	// Returns:
	//   - dYaw: accumulated yaw delta in radians
	//   - dPitch: accumulated pitch delta in radians
	ConsumeDeltas() (dYaw, dPitch float32)

	// ResetPointer forgets the previous absolute pointer sample, so the next
	// PointerMoved call is treated as a first sample. Call on capture state
	// changes to avoid a spurious jump.
	ResetPointer()

	// SetEnabled enables or disables ingestion. While disabled all samples
	// are dropped; accumulated angles are preserved.
	//
	// Parameters:
	//   - enabled: true to accept input
	SetEnabled(enabled bool)

	// Enabled reports whether the adapter is accepting input.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Sensitivity returns the pointer sensitivity in radians per pixel.
	//
	// Returns:
	//   - float32: the pointer sensitivity
	Sensitivity() float32
}

type adapterImpl struct {
	mu *sync.Mutex

	enabled bool

	sensitivity float32
	stickRate   float32
	deadZone    float32

	yaw   float32
	pitch float32

	dYaw   float32
	dPitch float32

	prevX, prevY float64
	hasPrev      bool
}

var _ Adapter = &adapterImpl{}

// NewAdapter creates a new input Adapter with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the adapter
//
// Returns:
//   - Adapter: the newly created adapter
func NewAdapter(options ...AdapterOption) Adapter {
	a := &adapterImpl{
		mu:          &sync.Mutex{},
		enabled:     true,
		sensitivity: 0.002,
		stickRate:   2.5,
		deadZone:    0.2,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *adapterImpl) PointerMoved(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	if !a.hasPrev {
		a.prevX, a.prevY = x, y
		a.hasPrev = true
		return
	}
	dx := x - a.prevX
	dy := y - a.prevY
	a.prevX, a.prevY = x, y
	a.ingest(float32(dx)*a.sensitivity, float32(dy)*a.sensitivity)
}

func (a *adapterImpl) PointerDelta(dx, dy float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	a.ingest(float32(dx)*a.sensitivity, float32(dy)*a.sensitivity)
}

func (a *adapterImpl) StickSample(x, y float32, dt float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	if float32(math.Hypot(float64(x), float64(y))) < a.deadZone {
		return
	}
	a.ingest(x*a.stickRate*dt, y*a.stickRate*dt)
}

// ingest folds a pair of screen-space deltas into the accumulators and the
// per-frame delta sink. Pointer right / stick right is a positive dx and
// decreases yaw; pointer up is a negative dy and increases pitch.
// Caller must hold the mutex.
func (a *adapterImpl) ingest(dx, dy float32) {
	dYaw := -dx
	dPitch := -dy

	a.yaw += dYaw
	a.pitch = common.Clamp(a.pitch+dPitch, -pitchLimit, pitchLimit)

	a.dYaw += dYaw
	a.dPitch += dPitch
}

func (a *adapterImpl) Yaw() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.yaw
}

func (a *adapterImpl) Pitch() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pitch
}

func (a *adapterImpl) SetAngles(yaw, pitch float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.yaw = yaw
	a.pitch = common.Clamp(pitch, -pitchLimit, pitchLimit)
	a.dYaw = 0
	a.dPitch = 0
}

func (a *adapterImpl) ConsumeDeltas() (dYaw, dPitch float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	dYaw, dPitch = a.dYaw, a.dPitch
	a.dYaw = 0
	a.dPitch = 0
	return dYaw, dPitch
}

func (a *adapterImpl) ResetPointer() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hasPrev = false
}

func (a *adapterImpl) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	if !enabled {
		a.hasPrev = false
	}
}

func (a *adapterImpl) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

func (a *adapterImpl) Sensitivity() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sensitivity
}
