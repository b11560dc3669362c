package scanner

import (
	"time"

	"codescanner/pkg/domain"
)

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *

// CaptureBackend is the external capture/detection service. Frame
// acquisition and image decoding happen behind it.
type CaptureBackend interface {
	// ConfigureInput attaches the named capture device to the session.
	ConfigureInput(device string) error
	// StartSession starts (or resumes) frame delivery.
	StartSession()
	// StopSession stops (or pauses) frame delivery.
	StopSession()
	// SetTorchMode writes the illumination assist mode.
	SetTorchMode(mode domain.TorchMode) error
	// SetDetectionHandler registers the function that receives the detections
	// of every frame. The handler may be called from any goroutine and does
	// not keep the slice after it returns.
	SetDetectionHandler(handler func(frame []domain.Detection))
}

// Permissions is the platform permission subsystem for camera access.
type Permissions interface {
	Status() domain.AuthorizationStatus
	// RequestAccess prompts for access and calls callback with the answer,
	// possibly from another goroutine.
	RequestAccess(callback func(granted bool))
}

// ForegroundEvents delivers app-will-enter-foreground notifications.
type ForegroundEvents interface {
	// Subscribe registers fn and returns a function that removes it.
	Subscribe(fn func()) (unsubscribe func())
}

// ResultSink receives the scanner's results. Calls are made from the
// controller's event loop and must return quickly.
type ResultSink interface {
	OnCodeCaptured(code string, codeType string)
	OnError(err error)
}

// Presenter is the UI collaborator. It is notified about presentation-level
// changes and never influences scanning decisions.
type Presenter interface {
	StatusChanged(status domain.Status)
	Flash()
	SettingsPromptVisible(visible bool)
}

// Scheduler runs fn once after d. The returned cancel function reports
// whether the call was prevented.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}
