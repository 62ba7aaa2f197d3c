package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/breakdown"
	"github.com/chantier-labs/avancement/internal/evm"
	"github.com/chantier-labs/avancement/internal/rollup"
)

// ErrSnapshotNotFound is returned when a named snapshot does not exist.
var ErrSnapshotNotFound = errors.New("report: snapshot not found")

const (
	snapshotExt     = ".yaml.lz4"
	storeDirPerm    = 0o755
	snapshotPerm    = 0o644
	snapshotVersion = 1
)

// Snapshot is a persisted analysis result. Snapshots allow comparing runs
// over time without re-reading the source schedule.
type Snapshot struct {
	Version   int                `yaml:"version"`
	SavedAt   time.Time          `yaml:"saved_at"`
	Series    analysis.Series    `yaml:"series"`
	Evm       *evm.Metrics       `yaml:"evm,omitempty"`
	Breakdown []breakdown.Bucket `yaml:"breakdown,omitempty"`
	Weekly    []rollup.WeekPoint `yaml:"weekly,omitempty"`
}

// Store persists snapshots as LZ4-compressed YAML files under a directory.
type Store struct {
	dir string
}

// NewStore creates a snapshot store rooted at dir. The directory is created
// on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+snapshotExt)
}

// Save writes the snapshot under the given name, overwriting any previous
// snapshot with that name.
func (s *Store) Save(name string, snap Snapshot) error {
	if snap.Version == 0 {
		snap.Version = snapshotVersion
	}

	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}

	err := os.MkdirAll(s.dir, storeDirPerm)
	if err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	f, err := os.OpenFile(s.path(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, snapshotPerm)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}

	zw := lz4.NewWriter(f)

	_, err = zw.Write(data)
	if err != nil {
		_ = zw.Close()
		_ = f.Close()

		return fmt.Errorf("compress snapshot: %w", err)
	}

	err = zw.Close()
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("flush snapshot: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close snapshot file: %w", err)
	}

	return nil
}

// Load reads a snapshot by name.
func (s *Store) Load(name string) (Snapshot, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
		}

		return Snapshot{}, fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()

	var snap Snapshot

	err = yaml.NewDecoder(lz4.NewReader(f)).Decode(&snap)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	return snap, nil
}

// List returns the names of all stored snapshots, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read store dir: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), snapshotExt))
	}

	sort.Strings(names)

	return names, nil
}
