package domain

// ScanState is the presentation state of the scanner. Exactly one state is
// active at a time and it is owned by the scan state machine.
type ScanState string

const (
	// ScanStateScanning means capture is active and detections are accepted.
	ScanStateScanning ScanState = "SCANNING"
	// ScanStateProcessing means a code was captured and capture is paused
	// until the scanner re-arms.
	ScanStateProcessing ScanState = "PROCESSING"
	// ScanStateUnauthorized means camera permission is unavailable and the
	// capture session is stopped.
	ScanStateUnauthorized ScanState = "UNAUTHORIZED"
	// ScanStateNotFound is a transient error-display state.
	ScanStateNotFound ScanState = "NOT_FOUND"
)

// AuthorizationStatus is the camera permission status reported by the platform.
type AuthorizationStatus string

const (
	AuthorizationAuthorized    AuthorizationStatus = "AUTHORIZED"
	AuthorizationDenied        AuthorizationStatus = "DENIED"
	AuthorizationNotDetermined AuthorizationStatus = "NOT_DETERMINED"
	AuthorizationRestricted    AuthorizationStatus = "RESTRICTED"
)

// TorchMode is the illumination assist mode of the capture device.
type TorchMode string

const (
	TorchModeOff  TorchMode = "OFF"
	TorchModeOn   TorchMode = "ON"
	TorchModeAuto TorchMode = "AUTO"
)

// ParseTorchMode maps a configuration value to a TorchMode. Unknown values
// fall back to TorchModeOff.
func ParseTorchMode(s string) TorchMode {
	switch TorchMode(s) {
	case TorchModeOn, TorchModeAuto:
		return TorchMode(s)
	default:
		return TorchModeOff
	}
}

// Status is an observable snapshot of the scanner.
type Status struct {
	// State is the current scan state.
	State ScanState `json:"state"`
	// Pending is true until the first authorization resolution arrives.
	Pending bool `json:"pending"`
	// Locked is true while incoming detections are ignored.
	Locked bool `json:"locked"`
	// Message is the text shown with ScanStateNotFound, if any.
	Message string `json:"message,omitempty"`
}
