package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/voidrunner/logging"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

// itemStorage is the subset of *gdata.Manager used by DiskStore
type itemStorage interface {
	ItemExists(itemKey string) bool
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// DiskStore persists each preference as its own gdata item holding the
// JSON-encoded value.
type DiskStore struct {
	items itemStorage
	log   zerolog.Logger
}

// OpenDiskStore opens (creating if needed) the save-data area for appName.
func OpenDiskStore(appName string) (*DiskStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data for %q: %w", appName, err)
	}
	return newDiskStore(m), nil
}

func newDiskStore(items itemStorage) *DiskStore {
	return &DiskStore{
		items: items,
		log:   logging.WithComponent("prefs"),
	}
}

func (s *DiskStore) Has(key Key) bool {
	return s.items.ItemExists(string(key))
}

func (s *DiskStore) GetInt(key Key) (int, bool) {
	v, ok := s.load(key)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func (s *DiskStore) GetFloat(key Key) (float64, bool) {
	return s.load(key)
}

func (s *DiskStore) SetInt(key Key, v int) error {
	return s.save(key, v)
}

func (s *DiskStore) SetFloat(key Key, v float64) error {
	return s.save(key, v)
}

// load reads and decodes one item. Unreadable or corrupt items count as absent.
func (s *DiskStore) load(key Key) (float64, bool) {
	if !s.items.ItemExists(string(key)) {
		return 0, false
	}
	data, err := s.items.LoadItem(string(key))
	if err != nil {
		s.log.Warn().Err(err).Str("key", string(key)).Msg("could not load preference")
		return 0, false
	}
	if len(data) == 0 {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn().Err(err).Str("key", string(key)).Msg("could not parse preference")
		return 0, false
	}
	return v, true
}

func (s *DiskStore) save(key Key, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.items.SaveItem(string(key), data); err != nil {
		s.log.Warn().Err(err).Str("key", string(key)).Msg("could not save preference")
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
