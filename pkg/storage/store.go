// Package storage implements the site's content store: a single document of
// named, insertion-ordered collections plus the settings singleton, held in
// memory and written through to durable key-value storage after every
// mutation.
package storage

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/lilhale/sitestore/pkg/domain"
	"github.com/lilhale/sitestore/pkg/kv"
)

// DefaultStorageKey is the key the document blob persists under.
const DefaultStorageKey = "schoolData"

// Store is the content store. All operations are safe for concurrent use;
// a single lock over the document is plenty at this scale.
type Store struct {
	mu  sync.RWMutex
	doc *domain.Document

	kv         kv.Store
	storageKey string
	newID      func() string
}

// Compile-time check that Store implements the content store contract
var _ domain.ContentStore = (*Store)(nil)

// NewStore creates a content store backed by the given key-value store.
func NewStore(kvStore kv.Store, options ...StoreOption) *Store {
	s := &Store{
		kv:         kvStore,
		storageKey: DefaultStorageKey,
		newID:      uuid.NewString,
	}

	// Apply options
	for _, option := range options {
		option(s)
	}

	return s
}

// Initialize hydrates the document from durable storage, or seeds and
// persists the default document when nothing usable is stored. A missing or
// unparsable blob is never an error; it just means a fresh profile.
// Idempotent: a second call without intervening mutations changes nothing.
func (s *Store) Initialize() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc != nil {
		return s.snapshotLocked(), nil
	}

	data, err := s.kv.Get(s.storageKey)
	if err == nil {
		doc, decodeErr := decodeDocument(data)
		if decodeErr == nil {
			s.doc = doc
			log.Printf("INFO: Hydrated document from key '%s'", s.storageKey)
			return s.snapshotLocked(), nil
		}
		log.Printf("WARN: Stored document is unreadable, reseeding: %v", decodeErr)
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		log.Printf("WARN: Could not read key '%s', reseeding: %v", s.storageKey, err)
	}

	s.doc = defaultDocument(s.newID)
	log.Printf("INFO: Seeded default document under key '%s'", s.storageKey)
	if err := s.persistLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	return s.snapshotLocked(), nil
}

// AddRecord appends a record with a freshly generated id to the named
// collection, creating the collection if needed, and persists the document.
// Any caller-supplied id is overwritten.
func (s *Store) AddRecord(collName string, fields domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}

	record := fields.Clone()
	record["id"] = s.newID()
	s.doc.Collections[collName] = append(s.doc.Collections[collName], record)

	return record.Clone(), s.persistLocked()
}

// UpdateRecord shallow-merges fields into the record with the given id.
// Fields not mentioned are preserved; the id field is immutable. Returns
// domain.ErrNotFound, with no mutation, when the id misses.
func (s *Store) UpdateRecord(collName, id string, fields domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}

	record, ok := s.findLocked(collName, id)
	if !ok {
		return nil, fmt.Errorf("record %s in collection %s: %w", id, collName, domain.ErrNotFound)
	}

	for key, value := range fields {
		if key != "id" { // Prevent updating the record id
			record[key] = value
		}
	}

	return record.Clone(), s.persistLocked()
}

// DeleteRecord removes the record with the given id and reports whether a
// record was actually removed. A second delete of the same id returns false.
func (s *Store) DeleteRecord(collName, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return false, err
	}

	records := s.doc.Collections[collName]
	for i, record := range records {
		if record.ID() == id {
			s.doc.Collections[collName] = append(records[:i:i], records[i+1:]...)
			return true, s.persistLocked()
		}
	}
	return false, nil
}

// GetRecord is a pure lookup with no side effects.
func (s *Store) GetRecord(collName, id string) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return nil, fmt.Errorf("record %s in collection %s: %w", id, collName, domain.ErrNotFound)
	}
	record, ok := s.findLocked(collName, id)
	if !ok {
		return nil, fmt.Errorf("record %s in collection %s: %w", id, collName, domain.ErrNotFound)
	}
	return record.Clone(), nil
}

// ListCollection returns the full collection in insertion order, or an empty
// slice for a collection that has never been created.
func (s *Store) ListCollection(collName string) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return []domain.Record{}
	}
	records := s.doc.Collections[collName]
	out := make([]domain.Record, 0, len(records))
	for _, record := range records {
		out = append(out, record.Clone())
	}
	return out
}

// ListPage returns one offset/limit window of the collection.
func (s *Store) ListPage(collName string, opts *domain.PageOptions) (*domain.PageResult, error) {
	if opts == nil {
		opts = domain.DefaultPageOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page options: %w", err)
	}

	records := s.ListCollection(collName)

	result := &domain.PageResult{
		Records: []domain.Record{},
		Total:   int64(len(records)),
	}

	// Validate has already rejected limits above MaxLimit
	limit := opts.Limit
	if limit <= 0 {
		limit = 50 // default
	}

	startIndex := opts.Offset
	if startIndex >= len(records) {
		return result, nil
	}

	endIndex := startIndex + limit
	if endIndex > len(records) {
		endIndex = len(records)
	} else if endIndex < len(records) {
		result.HasNext = true
	}
	if startIndex > 0 {
		result.HasPrev = true
	}

	result.Records = records[startIndex:endIndex]
	return result, nil
}

// GetSettings returns a copy of the settings singleton.
func (s *Store) GetSettings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return domain.Settings{}
	}
	return s.doc.Settings
}

// UpdateSettings shallow-merges the patch into the settings singleton,
// persists, and returns the updated settings. Nested social-media and theme
// patches merge field-wise.
func (s *Store) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return domain.Settings{}, err
	}

	patch.Apply(&s.doc.Settings)
	return s.doc.Settings, s.persistLocked()
}

// Document returns a deep snapshot of the current document.
func (s *Store) Document() *domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ensureLoadedLocked hydrates or seeds the document if Initialize has not
// run yet. Caller must hold the write lock.
func (s *Store) ensureLoadedLocked() error {
	if s.doc != nil {
		return nil
	}

	data, err := s.kv.Get(s.storageKey)
	if err == nil {
		if doc, decodeErr := decodeDocument(data); decodeErr == nil {
			s.doc = doc
			return nil
		}
	}
	s.doc = defaultDocument(s.newID)
	return s.persistLocked()
}

// findLocked scans the named collection for a record by id. Linear by
// design: collections hold dozens to low hundreds of records.
func (s *Store) findLocked(collName, id string) (domain.Record, bool) {
	for _, record := range s.doc.Collections[collName] {
		if record.ID() == id {
			return record, true
		}
	}
	return nil, false
}

// persistLocked writes the whole document through to durable storage. A
// failed write leaves the in-memory mutation intact and comes back as a
// PersistenceWarning so callers can keep going.
func (s *Store) persistLocked() error {
	data, err := encodeDocument(s.doc)
	if err != nil {
		log.Printf("WARN: Failed to encode document: %v", err)
		return &domain.PersistenceWarning{Key: s.storageKey, Err: err}
	}
	if err := s.kv.Set(s.storageKey, data); err != nil {
		log.Printf("WARN: Failed to persist document to key '%s': %v", s.storageKey, err)
		return &domain.PersistenceWarning{Key: s.storageKey, Err: err}
	}
	return nil
}

// snapshotLocked deep-copies the document. Caller must hold at least a read
// lock.
func (s *Store) snapshotLocked() *domain.Document {
	if s.doc == nil {
		return nil
	}
	out := domain.NewDocument()
	out.Settings = s.doc.Settings
	for name, records := range s.doc.Collections {
		copied := make([]domain.Record, 0, len(records))
		for _, record := range records {
			copied = append(copied, record.Clone())
		}
		out.Collections[name] = copied
	}
	return out
}
