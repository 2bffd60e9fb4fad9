package challenge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Catalog exposes the immutable challenge set. IDs returns discovery order;
// Load fails with ErrNotFound for unknown ids. Implementations are read-only
// after the first scan.
type Catalog interface {
	IDs() []string
	Load(id string) (Challenge, error)
}

// FSCatalog reads one JSON document per challenge from a content directory.
// The filename (minus .json) is the challenge id. The directory is scanned
// once, lazily, and cached for the process lifetime.
type FSCatalog struct {
	dir string

	mu     sync.Mutex
	loaded bool
	ids    []string
	byID   map[string]Challenge
}

func NewFSCatalog(dir string) *FSCatalog {
	if dir == "" {
		dir = "./content"
	}
	return &FSCatalog{dir: dir}
}

func (c *FSCatalog) IDs() []string {
	if err := c.ensure(); err != nil {
		return nil
	}
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

func (c *FSCatalog) Load(id string) (Challenge, error) {
	if err := c.ensure(); err != nil {
		return Challenge{}, err
	}
	ch, ok := c.byID[id]
	if !ok {
		return Challenge{}, fmt.Errorf("challenge %q: %w", id, ErrNotFound)
	}
	return ch, nil
}

func (c *FSCatalog) ensure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}
	byID := make(map[string]Challenge)
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ch, err := readChallengeFile(filepath.Join(c.dir, e.Name()))
		if err != nil {
			return fmt.Errorf("content %s: %w", e.Name(), err)
		}
		if ch.ID == "" {
			ch.ID = strings.TrimSuffix(e.Name(), ".json")
		}
		byID[ch.ID] = ch
		ids = append(ids, ch.ID)
	}
	sort.Strings(ids)
	c.byID = byID
	c.ids = ids
	c.loaded = true
	return nil
}

func readChallengeFile(path string) (Challenge, error) {
	f, err := os.Open(path)
	if err != nil {
		return Challenge{}, err
	}
	defer f.Close()
	ch := Challenge{Active: true}
	if err := json.NewDecoder(f).Decode(&ch); err != nil {
		return Challenge{}, err
	}
	if ch.Points == 0 {
		ch.Points = ch.Difficulty.DefaultPoints()
	}
	return ch, nil
}

// StaticCatalog serves a fixed challenge slice; used for seeding and tests.
type StaticCatalog struct {
	ids  []string
	byID map[string]Challenge
}

func NewStaticCatalog(challenges ...Challenge) *StaticCatalog {
	s := &StaticCatalog{byID: make(map[string]Challenge, len(challenges))}
	for _, ch := range challenges {
		if ch.Points == 0 {
			ch.Points = ch.Difficulty.DefaultPoints()
		}
		s.byID[ch.ID] = ch
		s.ids = append(s.ids, ch.ID)
	}
	return s
}

func (s *StaticCatalog) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *StaticCatalog) Load(id string) (Challenge, error) {
	ch, ok := s.byID[id]
	if !ok {
		return Challenge{}, fmt.Errorf("challenge %q: %w", id, ErrNotFound)
	}
	return ch, nil
}
