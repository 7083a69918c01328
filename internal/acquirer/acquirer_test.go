package acquirer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storagescan-uploader/internal/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) (*Fetcher, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := New(srv.URL, t.TempDir(), 3, &operator.Scripted{})
	f.probe = func() bool { return true }
	f.sleep = func(d time.Duration) {}
	return f, srv
}

func TestFetchAllRequested(t *testing.T) {
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	})

	items, err := f.Fetch(3)

	require.NoError(t, err)
	require.Len(t, items, 3)
	seen := map[string]bool{}
	for i, it := range items {
		assert.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "item IDs must be unique")
		seen[it.ID] = true

		assert.Equal(t, filepath.Join(f.Dir, fmt.Sprintf("image_%d.jpg", i)), it.Path)
		data, rerr := os.ReadFile(it.Path)
		require.NoError(t, rerr)
		assert.Equal(t, "jpeg-bytes", string(data))
	}
}

func TestFetchPartialBatchIsNotFatal(t *testing.T) {
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("random") == "1" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	})

	items, err := f.Fetch(3)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetchNothingAcquired(t *testing.T) {
	requests := 0
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	items, err := f.Fetch(2)

	require.ErrorIs(t, err, ErrNothingAcquired)
	assert.Empty(t, items)
	// Retry ceiling respected exactly per image.
	assert.Equal(t, 2*f.Retries, requests)
}

func TestFetchOfflineFailsBeforeAnyRequest(t *testing.T) {
	requests := 0
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	f.probe = func() bool { return false }

	_, err := f.Fetch(2)

	require.ErrorIs(t, err, ErrOffline)
	assert.Zero(t, requests)
}

func TestFetchOperatorRetryRecovers(t *testing.T) {
	failures := 3 // exhaust the automatic attempts once
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if failures > 0 {
			failures--
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	})
	f.Operator = &operator.Scripted{RetryAnswers: []bool{true}}

	items, err := f.Fetch(1)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFetchNonOKStatusRetried(t *testing.T) {
	requests := 0
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	})

	items, err := f.Fetch(1)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, requests)
}
