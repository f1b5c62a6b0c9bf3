// internal/roster/cache.go
//
// Roster acquisition with an on-disk cache.
// Responsibilities:
//   - Opening the SQLite cache with safe defaults (WAL, busy timeout).
//   - Refetching the published roster JSON when forced or when the cached
//     copy is older than 24 hours.
//   - Falling back gracefully: remote → cached bytes → embedded copy.
//
// Every failure on the fallback chain is a logged warning, not an error;
// only an unparseable payload surfaces to the caller.

package roster

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

const (
	dataURL = "https://raw.githubusercontent.com/Kaseioo/pathtonowordle/refs/heads/main/src/character_data/characters.json"

	maxCacheAge  = 24 * time.Hour
	fetchTimeout = 15 * time.Second
)

// Cache persists the last fetched roster payload in a single-row SQLite
// table together with its fetch time.
type Cache struct {
	db *sql.DB
}

/**
 * OpenCache opens (and creates if missing) the roster cache database.
 *
 * - Ensures the parent directory exists for nested paths.
 * - Configures busy timeout and WAL journaling mode.
 */
func OpenCache(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS roster_cache (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload BLOB NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create roster_cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Payload returns the cached roster bytes and their fetch time.
// sql.ErrNoRows means the cache is empty.
func (c *Cache) Payload(ctx context.Context) ([]byte, time.Time, error) {
	var payload []byte
	var fetchedAt time.Time
	err := c.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM roster_cache WHERE id = 1`,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, time.Time{}, err
	}
	return payload, fetchedAt, nil
}

// Store replaces the cached payload, stamping it with the current time.
func (c *Cache) Store(ctx context.Context, payload []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO roster_cache (id, payload, fetched_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		payload, time.Now().UTC(),
	)
	return err
}

// DefaultCachePath resolves the cache database location: the
// PTNDLE_CACHE_DB override, else <user cache dir>/ptndle-cli/cache.db.
func DefaultCachePath() string {
	if p := os.Getenv("PTNDLE_CACHE_DB"); p != "" {
		return p
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join("ptndle-cli-cache", "cache.db")
	}
	return filepath.Join(base, "ptndle-cli", "cache.db")
}

// fetchRemote downloads the published roster JSON.
func fetchRemote(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dataURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch roster: unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Load returns the roster, refreshing the cache when forced or stale.
//
// Order of preference: freshly fetched payload, cached payload, embedded
// copy. A cache that cannot be opened only costs the caching; the embedded
// roster still loads.
func Load(ctx context.Context, forceUpdate bool) ([]game.Sinner, error) {
	cache, err := OpenCache(DefaultCachePath())
	if err != nil {
		log.Warn().Err(err).Msg("could not open roster cache, falling back to embedded data")
		return Parse(embeddedSinners)
	}
	defer cache.Close()

	payload, fetchedAt, err := cache.Payload(ctx)
	stale := err != nil || time.Since(fetchedAt) > maxCacheAge
	if err != nil && err != sql.ErrNoRows {
		log.Warn().Err(err).Msg("could not read roster cache")
		payload = nil
	}

	if forceUpdate || stale {
		fetched, ferr := fetchRemote(ctx)
		if ferr != nil {
			log.Warn().Err(ferr).Msg("failed to update sinner data, falling back to cache")
		} else {
			if serr := cache.Store(ctx, fetched); serr != nil {
				log.Warn().Err(serr).Msg("could not write roster cache")
			}
			payload = fetched
		}
	}

	if payload == nil {
		log.Warn().Msg("no cached sinner data, falling back to embedded data")
		payload = embeddedSinners
	}
	return Parse(payload)
}
