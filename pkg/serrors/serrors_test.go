package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"codescanner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type deviceError struct{ device string }

func (e deviceError) Error() string { return "device " + e.device + " busy" }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrDeviceAcquisition,
		serrors.ErrPermissionDenied,
		serrors.ErrUnsupportedSymbology,
		serrors.ErrClosed,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := deviceError{"back-camera"}

	e1 := serrors.With(serrors.ErrPermissionDenied, "camera access %s", "denied")
	require.Equal(t, "camera access denied", e1.Error())

	e2 := serrors.Wrap(serrors.ErrDeviceAcquisition, cause, "configuring input")
	require.Equal(t, "configuring input: device back-camera busy", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrClosed)
	require.Equal(t, "CLOSED", e3.Error())
}

func TestIsAndAs(t *testing.T) {
	cause := &deviceError{"front-camera"}
	e := serrors.Wrap(serrors.ErrDeviceAcquisition, cause, "configuring input")

	require.ErrorIs(t, e, serrors.ErrDeviceAcquisition)
	require.ErrorIs(t, e, cause)
	require.NotErrorIs(t, e, serrors.ErrPermissionDenied)

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrDeviceAcquisition, k)

	var de *deviceError
	require.ErrorAs(t, e, &de)
	require.Equal(t, cause, de)
}

func TestKindOf(t *testing.T) {
	base := errors.New("boom")
	wrapped := fmt.Errorf("starting scanner: %w", serrors.Wrap(serrors.ErrUnavailable, base, "journal"))

	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(wrapped))
	require.Nil(t, serrors.KindOf(base))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInternal, base, "flush")
	require.Equal(t, serrors.ErrInternal, e.Kind())
	require.Equal(t, "flush", e.Message())
	require.Equal(t, base, e.Cause())
}
