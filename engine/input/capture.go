package input

// CapturePort abstracts exclusive pointer capture offered by the host
// environment (typically the window layer).
//
// Capture requests are best-effort: the host may refuse, and callers must
// treat a refusal as non-fatal, staying in the non-exclusive input regime
// until a later request succeeds.
type CapturePort interface {
	// RequestCapture asks the host for exclusive pointer capture.
	//
	// Returns:
	//   - error: non-nil if the host refused the request
	RequestCapture() error

	// ReleaseCapture releases exclusive pointer capture if held.
	// Safe to call when capture is not held.
	ReleaseCapture()

	// Captured reports whether exclusive pointer capture is currently held.
	//
	// Returns:
	//   - bool: true if the pointer is captured
	Captured() bool
}
