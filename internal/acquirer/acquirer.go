package acquirer

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"
	"storagescan-uploader/internal/operator"

	"github.com/google/uuid"
)

var (
	// ErrNothingAcquired means not a single image could be fetched.
	ErrNothingAcquired = errors.New("no images were downloaded successfully")
	// ErrOffline means the reachability probe failed before any fetch.
	ErrOffline = errors.New("no internet connection available")
)

// Item is one locally staged payload ready for upload.
type Item struct {
	ID   string
	Path string
}

// Fetcher downloads random images into the scratch directory. Each image
// gets bounded retries; a batch smaller than requested is not an error
// unless it is empty.
type Fetcher struct {
	SourceURL string // e.g. https://picsum.photos/800/600
	Dir       string
	Retries   int
	Client    *http.Client
	Operator  operator.Prompt

	// probe and sleep are swappable for tests.
	probe func() bool
	sleep func(time.Duration)
}

func New(sourceURL, dir string, retries int, op operator.Prompt) *Fetcher {
	return &Fetcher{
		SourceURL: sourceURL,
		Dir:       dir,
		Retries:   retries,
		Client:    &http.Client{Timeout: 10 * time.Second},
		Operator:  op,
		probe:     online,
		sleep:     time.Sleep,
	}
}

// online dials a well-known resolver to check basic connectivity.
func online() bool {
	conn, err := net.DialTimeout("tcp", "8.8.8.8:53", 3*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Fetch retrieves up to n images. Failed images can be retried once more at
// the operator's request; the batch proceeds with whatever landed, and only
// an empty result is fatal.
func (f *Fetcher) Fetch(n int) ([]Item, error) {
	if !f.probe() {
		return nil, ErrOffline
	}

	logger.Info(i18n.T("downloading_n"), n)
	var items []Item

	for i := 0; i < n; i++ {
		it, err := f.fetchOne(i, n)
		if err != nil {
			logger.Info(i18n.T("image_failed_all"), i+1, f.Retries)
			if f.Operator != nil && f.Operator.AcquireRetry(i+1) {
				it, err = f.fetchOne(i, n)
			}
		}
		if err == nil {
			items = append(items, it)
		}
	}

	if len(items) < n {
		logger.Info(i18n.T("partial_warning"), len(items), n)
		if len(items) == 0 {
			return nil, ErrNothingAcquired
		}
	} else {
		logger.Info(i18n.T("all_downloaded"), n)
	}
	return items, nil
}

// fetchOne downloads image i with bounded retries.
func (f *Fetcher) fetchOne(i, total int) (Item, error) {
	var lastErr error
	for attempt := 1; attempt <= f.Retries; attempt++ {
		logger.Info(i18n.T("downloading_one"), i+1, total)

		path, err := f.download(i)
		if err == nil {
			logger.Info(i18n.T("image_ok"), i+1)
			return Item{ID: uuid.NewString(), Path: path}, nil
		}

		lastErr = err
		logger.Info(i18n.T("image_attempt_fail"), attempt, i+1, err)
		f.sleep(1 * time.Second)
	}
	return Item{}, lastErr
}

func (f *Fetcher) download(i int) (string, error) {
	url := fmt.Sprintf("%s?random=%d", f.SourceURL, i)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image source returned status: %s", resp.Status)
	}

	path := filepath.Join(f.Dir, fmt.Sprintf("image_%d.jpg", i))
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
