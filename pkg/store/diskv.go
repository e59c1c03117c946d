package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// snapshotKey is the single diskv key holding the serialized snapshot.
const snapshotKey = "nikki-data"

// Persistence is the durability contract for the snapshot blob.
//
// Load returns a default snapshot when nothing is stored yet. A blob with a
// missing or stale version tag is migrated field by field and immediately
// re-persisted; a current-version blob that fails structural validation is
// surfaced as an error wrapping ErrInvalidSnapshot so the caller can fall
// back without crashing.
type Persistence interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
	Clear() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv under the configured base path.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		now:      time.Now,
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

func (p *persistence) Load() (*Snapshot, error) {
	if !p.d.Has(snapshotKey) {
		return NewDefaultSnapshot(), nil
	}

	raw, err := p.d.Read(snapshotKey)
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Not even a JSON object. Treat as legacy garbage and rebuild.
		return p.migrate(nil)
	}

	var version string
	if raw, ok := fields["version"]; ok {
		_ = json.Unmarshal(raw, &version)
	}
	if version != CurrentVersion {
		return p.migrate(fields)
	}

	if err := validateBlob(fields); err != nil {
		return nil, err
	}

	var b blob
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return b.snapshot(), nil
}

// migrate coerces a legacy payload and persists the result so subsequent
// loads see the current version.
func (p *persistence) migrate(fields map[string]json.RawMessage) (*Snapshot, error) {
	s := coerceLegacy(fields)
	if err := p.Save(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *persistence) Save(s *Snapshot) error {
	b := blob{
		Version:      CurrentVersion,
		Tasks:        s.Tasks,
		Completion:   s.Completion,
		DiaryEntries: s.DiaryEntries,
		Categories:   s.Categories,
		LastUpdated:  p.now().UnixMilli(),
	}
	data, err := json.Marshal(&b)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := p.d.Write(snapshotKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

func (p *persistence) Clear() error {
	if !p.d.Has(snapshotKey) {
		return nil
	}
	if err := p.d.Erase(snapshotKey); err != nil {
		return fmt.Errorf("store: erase snapshot: %w", err)
	}
	return nil
}
