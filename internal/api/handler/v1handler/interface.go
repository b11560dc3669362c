package v1handler

import (
	"context"

	"codescanner/pkg/domain"
)

//go:generate mockgen -package mockv1handler -source=interface.go -destination=mock/mockv1handler.go *

// Scanner is the part of the scan controller the API drives.
type Scanner interface {
	Status() domain.Status
	Reset()
	ResetWithError(message string)
	OneTimeSearch() bool
	SetOneTimeSearch(enabled bool)
	SetTorchMode(ctx context.Context, mode domain.TorchMode) error
}
