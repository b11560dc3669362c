package journal_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"codescanner/internal/journal"
	mockscanner "codescanner/internal/scanner/mock"
	"codescanner/pkg/domain"
	"codescanner/pkg/storage"
	mockstorage "codescanner/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recorder collects the captures handed to StoreCaptures.
type recorder struct {
	mu       sync.Mutex
	captures []domain.Capture
}

func (r *recorder) add(c domain.Capture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captures = append(r.captures, c)
}

func (r *recorder) codes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.captures))
	for _, c := range r.captures {
		out = append(out, c.Code)
	}

	return out
}

func expectTx(strg *mockstorage.MockStorage, tx *mockstorage.MockAllStorage) *gomock.Call {
	return strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
}

func TestSink_WritesFullBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockscanner.NewMockResultSink(ctrl)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	next.EXPECT().OnCodeCaptured(gomock.Any(), gomock.Any()).Times(3)

	var rec recorder
	written := make(chan struct{}, 2)
	expectTx(strg, tx).Times(2)
	tx.EXPECT().StoreCaptures(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, captures ...domain.Capture) ([]domain.Capture, error) {
			for _, c := range captures {
				rec.add(c)
			}
			written <- struct{}{}

			return captures, nil
		}).Times(2)

	sink, err := journal.New(context.Background(), next, strg, nil, journal.Options{
		BatchSize:     2,
		FlushInterval: time.Hour,
	})
	require.NoError(t, err)

	sink.OnCodeCaptured("012345678905", "UPCA")
	sink.OnCodeCaptured("4006381333931", "EAN13")

	select {
	case <-written:
	case <-time.After(time.Second):
		t.Fatal("full batch was not written")
	}
	require.Equal(t, []string{"012345678905", "4006381333931"}, rec.codes())

	// Close flushes the partial batch
	sink.OnCodeCaptured("hello", "QR")
	require.NoError(t, sink.Close(context.Background()))
	require.Equal(t, []string{"012345678905", "4006381333931", "hello"}, rec.codes())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, c := range rec.captures {
		require.Equal(t, sink.SessionID(), c.SessionID)
		require.False(t, c.CapturedAt.IsZero())
	}
}

func TestSink_FlushesOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	written := make(chan struct{}, 1)
	expectTx(strg, tx)
	tx.EXPECT().StoreCaptures(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, captures ...domain.Capture) ([]domain.Capture, error) {
			written <- struct{}{}

			return captures, nil
		})

	sink, err := journal.New(context.Background(), nil, strg, nil, journal.Options{
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	sink.OnCodeCaptured("4006381333931", "EAN13")
	select {
	case <-written:
	case <-time.After(time.Second):
		t.Fatal("capture was not flushed on interval")
	}

	require.NoError(t, sink.Close(context.Background()))
}

func TestSink_ForwardsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockscanner.NewMockResultSink(ctrl)
	strg := mockstorage.NewMockStorage(ctrl)

	busy := errors.New("camera busy")
	next.EXPECT().OnError(busy)

	sink, err := journal.New(context.Background(), next, strg, nil, journal.Options{})
	require.NoError(t, err)

	sink.OnError(busy)
	require.NoError(t, sink.Close(context.Background()))
}

func TestSink_StorageFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockscanner.NewMockResultSink(ctrl)
	strg := mockstorage.NewMockStorage(ctrl)

	next.EXPECT().OnCodeCaptured("4006381333931", "EAN13")
	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	sink, err := journal.New(context.Background(), next, strg, nil, journal.Options{BatchSize: 1})
	require.NoError(t, err)

	sink.OnCodeCaptured("4006381333931", "EAN13")
	require.NoError(t, sink.Close(context.Background()))
}

func TestSink_DropsWhenBufferFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	var rec recorder
	entered := make(chan struct{})
	release := make(chan struct{})
	expectTx(strg, tx).Times(2)
	first := tx.EXPECT().StoreCaptures(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, captures ...domain.Capture) ([]domain.Capture, error) {
			close(entered)
			<-release
			for _, c := range captures {
				rec.add(c)
			}

			return captures, nil
		})
	tx.EXPECT().StoreCaptures(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, captures ...domain.Capture) ([]domain.Capture, error) {
			for _, c := range captures {
				rec.add(c)
			}

			return captures, nil
		}).After(first)

	sink, err := journal.New(context.Background(), nil, strg, nil, journal.Options{
		BufferSize:    1,
		BatchSize:     1,
		FlushInterval: time.Hour,
	})
	require.NoError(t, err)

	sink.OnCodeCaptured("one", "QR")
	<-entered
	sink.OnCodeCaptured("two", "QR")
	sink.OnCodeCaptured("three", "QR")
	close(release)

	require.NoError(t, sink.Close(context.Background()))
	require.Equal(t, []string{"one", "two"}, rec.codes())

	// captures after Close are ignored
	sink.OnCodeCaptured("four", "QR")
}

func TestSink_AppliesRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	var before time.Time
	expectTx(strg, tx)
	tx.EXPECT().StoreCaptures(gomock.Any(), gomock.Any()).Return(nil, nil)
	tx.EXPECT().DeleteCapturesBefore(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, t time.Time) (int64, error) {
			before = t

			return 3, nil
		})

	sink, err := journal.New(context.Background(), nil, strg, nil, journal.Options{
		BatchSize: 1,
		Retention: 24 * time.Hour,
	})
	require.NoError(t, err)

	sink.OnCodeCaptured("4006381333931", "EAN13")
	require.NoError(t, sink.Close(context.Background()))
	require.WithinDuration(t, time.Now().Add(-24*time.Hour), before, time.Minute)
}
