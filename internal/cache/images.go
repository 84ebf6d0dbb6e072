package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// BadgeCache provides disk + memory caching for the small badge images
// shown inline on ticker rows.
type BadgeCache struct {
	cacheDir string
	memory   sync.Map // url -> *ebiten.Image
	loading  sync.Map // url -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks in-flight downloads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

// NewBadgeCache creates a badge cache with the given disk directory.
func NewBadgeCache(cacheDir string) (*BadgeCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &BadgeCache{
		cacheDir: cacheDir,
		sem:      make(chan struct{}, 4),
	}, nil
}

// Get returns a cached badge if available, or nil.
func (bc *BadgeCache) Get(url string) *ebiten.Image {
	if v, ok := bc.memory.Load(url); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync starts loading a badge from URL in the background.
// The callback is called with the image when ready (may be called from a
// goroutine).
func (bc *BadgeCache) LoadAsync(url string, callback func(*ebiten.Image)) {
	// Already in memory?
	if v, ok := bc.memory.Load(url); ok {
		callback(v.(*ebiten.Image))
		return
	}

	// Dedup in-flight requests: join an existing entry or create a new one.
	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := bc.loading.LoadOrStore(url, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer bc.loading.Delete(url)

		// Limit concurrent downloads.
		bc.sem <- struct{}{}
		defer func() { <-bc.sem }()

		img, err := bc.loadImage(url)
		if err != nil {
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		bc.memory.Store(url, eimg)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

func (bc *BadgeCache) loadImage(url string) (image.Image, error) {
	diskPath := bc.diskPath(url)

	// Try disk cache first
	if f, err := os.Open(diskPath); err == nil {
		defer f.Close()
		img, _, err := image.Decode(f)
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("badge download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (bc *BadgeCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(bc.cacheDir, name[:2], name)
}

// Clear removes all cached badges from memory and disk. The cache keeps
// working afterward; new requests re-download.
func (bc *BadgeCache) Clear() error {
	bc.memory.Range(func(key, _ any) bool {
		bc.memory.Delete(key)
		return true
	})
	return os.RemoveAll(bc.cacheDir)
}
