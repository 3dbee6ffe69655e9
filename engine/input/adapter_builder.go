package input

// AdapterOption is a functional option for configuring an Adapter.
type AdapterOption func(*adapterImpl)

// WithSensitivity sets the pointer sensitivity in radians per pixel.
//
// Parameters:
//   - sensitivity: radians of look angle per pixel of pointer motion
//
// Returns:
//   - AdapterOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) AdapterOption {
	return func(a *adapterImpl) {
		a.sensitivity = sensitivity
	}
}

// WithStickRate sets the controller stick angular rate multiplier.
// A full stick deflection turns at this rate in radians per second.
//
// Parameters:
//   - rate: radians per second at full deflection
//
// Returns:
//   - AdapterOption: functional option to set the stick rate
func WithStickRate(rate float32) AdapterOption {
	return func(a *adapterImpl) {
		a.stickRate = rate
	}
}

// WithDeadZone sets the controller stick dead zone radius.
// Samples whose deflection magnitude is below this value are dropped.
//
// Parameters:
//   - deadZone: dead zone radius in [0, 1)
//
// Returns:
//   - AdapterOption: functional option to set the dead zone
func WithDeadZone(deadZone float32) AdapterOption {
	return func(a *adapterImpl) {
		a.deadZone = deadZone
	}
}
