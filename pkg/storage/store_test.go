package storage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilhale/sitestore/pkg/domain"
	"github.com/lilhale/sitestore/pkg/kv"
)

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	store := NewStore(mem)
	_, err := store.Initialize()
	require.NoError(t, err)
	return store, mem
}

func TestInitialize_SeedsDefaults(t *testing.T) {
	store, mem := newTestStore(t)

	courses := store.ListCollection(domain.CollCourses)
	assert.Len(t, courses, 6)

	// Every seeded record carries a unique, non-empty id
	seen := make(map[string]bool)
	for _, c := range courses {
		require.NotEmpty(t, c.ID())
		assert.False(t, seen[c.ID()], "duplicate id %s", c.ID())
		seen[c.ID()] = true
	}

	settings := store.GetSettings()
	assert.Equal(t, "Lil' Hale Learners", settings.SiteName)
	assert.NotEmpty(t, settings.Tagline)
	assert.NotEmpty(t, settings.SocialMedia.Facebook)

	// Seeding persisted the document
	_, err := mem.Get(DefaultStorageKey)
	require.NoError(t, err)
}

func TestInitialize_Idempotent(t *testing.T) {
	store, mem := newTestStore(t)

	first, err := mem.Get(DefaultStorageKey)
	require.NoError(t, err)

	// Second call in the same process must not reseed
	_, err = store.Initialize()
	require.NoError(t, err)
	second, err := mem.Get(DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A fresh store over the same storage hydrates instead of reseeding
	_, err = NewStore(mem).Initialize()
	require.NoError(t, err)
	third, err := mem.Get(DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestInitialize_RecoversFromCorruptBlob(t *testing.T) {
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(DefaultStorageKey, []byte("not a document")))

	store := NewStore(mem)
	_, err := store.Initialize()
	require.NoError(t, err)
	assert.Len(t, store.ListCollection(domain.CollCourses), 6)
}

func TestRoundTrip_SimulatedRestart(t *testing.T) {
	store, mem := newTestStore(t)

	added, err := store.AddRecord(domain.CollGallery, domain.Record{"url": "https://images.example/new.jpg", "caption": "New"})
	require.NoError(t, err)
	before := store.Document()

	reloaded := NewStore(mem)
	_, err = reloaded.Initialize()
	require.NoError(t, err)
	after := reloaded.Document()

	// Compare through JSON so integer width changes from the codec don't
	// count as differences
	beforeJSON, err := json.Marshal(before)
	require.NoError(t, err)
	afterJSON, err := json.Marshal(after)
	require.NoError(t, err)
	assert.JSONEq(t, string(beforeJSON), string(afterJSON))

	// Insertion order survived the reload
	got, err := reloaded.GetRecord(domain.CollGallery, added.ID())
	require.NoError(t, err)
	assert.Equal(t, "New", got["caption"])
	gallery := reloaded.ListCollection(domain.CollGallery)
	assert.Equal(t, added.ID(), gallery[len(gallery)-1].ID())
}

func TestAddRecord_AssignsFreshID(t *testing.T) {
	store, _ := newTestStore(t)

	before := store.ListCollection(domain.CollCourses)
	record, err := store.AddRecord(domain.CollCourses, domain.Record{"title": "Art Club"})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID())
	assert.Equal(t, "Art Club", record["title"])

	after := store.ListCollection(domain.CollCourses)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, record.ID(), after[len(after)-1].ID())
	for _, existing := range before {
		assert.NotEqual(t, existing.ID(), record.ID())
	}
}

func TestAddRecord_IgnoresCallerID(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.AddRecord(domain.CollForums, domain.Record{"id": "spoofed", "title": "Hello"})
	require.NoError(t, err)
	assert.NotEqual(t, "spoofed", record.ID())
}

func TestAddRecord_CreatesCollection(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.AddRecord("announcements", domain.Record{"text": "Open house Friday"})
	require.NoError(t, err)

	list := store.ListCollection("announcements")
	require.Len(t, list, 1)
	assert.Equal(t, record.ID(), list[0].ID())
}

func TestGetRecord_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.AddRecord(domain.CollForums, domain.Record{"title": "Original"})
	require.NoError(t, err)

	got, err := store.GetRecord(domain.CollForums, record.ID())
	require.NoError(t, err)
	got["title"] = "Mutated"

	again, err := store.GetRecord(domain.CollForums, record.ID())
	require.NoError(t, err)
	assert.Equal(t, "Original", again["title"])
}

func TestGetRecord_CopiesNestedValues(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.AddRecord(domain.CollGallery, domain.Record{
		"caption": "Garden day",
		"meta":    map[string]interface{}{"photographer": "Maria"},
		"tags":    []interface{}{"outdoor", "spring"},
	})
	require.NoError(t, err)

	// Mutating nested values on any returned record must not reach the
	// store's document
	record["meta"].(map[string]interface{})["photographer"] = "Mallory"

	got, err := store.GetRecord(domain.CollGallery, record.ID())
	require.NoError(t, err)
	assert.Equal(t, "Maria", got["meta"].(map[string]interface{})["photographer"])

	got["meta"].(map[string]interface{})["photographer"] = "Mallory"
	got["tags"].([]interface{})[0] = "indoor"

	again, err := store.GetRecord(domain.CollGallery, record.ID())
	require.NoError(t, err)
	assert.Equal(t, "Maria", again["meta"].(map[string]interface{})["photographer"])
	assert.Equal(t, "outdoor", again["tags"].([]interface{})[0])

	listed := store.ListCollection(domain.CollGallery)
	listed[len(listed)-1]["meta"].(map[string]interface{})["photographer"] = "Mallory"
	final, err := store.GetRecord(domain.CollGallery, record.ID())
	require.NoError(t, err)
	assert.Equal(t, "Maria", final["meta"].(map[string]interface{})["photographer"])
}

func TestUpdateRecord_ShallowMerge(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.AddRecord(domain.CollCourses, domain.Record{"title": "Chess Club", "capacity": 8, "ageGroup": "5-6"})
	require.NoError(t, err)

	updated, err := store.UpdateRecord(domain.CollCourses, record.ID(), domain.Record{"capacity": 12})
	require.NoError(t, err)
	assert.EqualValues(t, 12, updated["capacity"])
	assert.Equal(t, "Chess Club", updated["title"])
	assert.Equal(t, "5-6", updated["ageGroup"])
	assert.Equal(t, record.ID(), updated.ID())
}

func TestUpdateRecord_IDImmutable(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.AddRecord(domain.CollForums, domain.Record{"title": "Thread"})
	require.NoError(t, err)

	updated, err := store.UpdateRecord(domain.CollForums, record.ID(), domain.Record{"id": "different", "title": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, record.ID(), updated.ID())
	assert.Equal(t, "Renamed", updated["title"])
}

func TestUpdateRecord_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	before := store.ListCollection(domain.CollCourses)
	_, err := store.UpdateRecord(domain.CollCourses, "no-such-id", domain.Record{"title": "Ghost"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, before, store.ListCollection(domain.CollCourses))
}

func TestDeleteRecord(t *testing.T) {
	store, _ := newTestStore(t)

	courses := store.ListCollection(domain.CollCourses)
	victim := courses[2]

	removed, err := store.DeleteRecord(domain.CollCourses, victim.ID())
	require.NoError(t, err)
	assert.True(t, removed)

	after := store.ListCollection(domain.CollCourses)
	assert.Len(t, after, len(courses)-1)
	for _, c := range after {
		assert.NotEqual(t, victim.ID(), c.ID())
	}

	// Second delete of the same id is a no-op
	removed, err = store.DeleteRecord(domain.CollCourses, victim.ID())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListCollection_UnknownIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Empty(t, store.ListCollection("no-such-collection"))
}

func TestUpdateSettings_PartialMerge(t *testing.T) {
	store, _ := newTestStore(t)

	original := store.GetSettings()
	name := "New Name"
	updated, err := store.UpdateSettings(domain.SettingsPatch{SiteName: &name})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.SiteName)
	assert.Equal(t, original.Tagline, updated.Tagline)
	assert.Equal(t, original.SocialMedia, updated.SocialMedia)
}

func TestUpdateSettings_NestedSocialMediaMerge(t *testing.T) {
	store, _ := newTestStore(t)

	original := store.GetSettings()
	twitter := "https://twitter.com/new-handle"
	updated, err := store.UpdateSettings(domain.SettingsPatch{
		SocialMedia: &domain.SocialMediaPatch{Twitter: &twitter},
	})
	require.NoError(t, err)

	assert.Equal(t, twitter, updated.SocialMedia.Twitter)
	assert.Equal(t, original.SocialMedia.Facebook, updated.SocialMedia.Facebook)
	assert.Equal(t, original.SocialMedia.Instagram, updated.SocialMedia.Instagram)
}

func TestPersistenceFailure_IsWarningNotFatal(t *testing.T) {
	store, mem := newTestStore(t)

	mem.FailWrites = errors.New("quota exceeded")
	record, err := store.AddRecord(domain.CollGallery, domain.Record{"caption": "Unsaved"})
	require.Error(t, err)
	assert.True(t, domain.IsPersistenceWarning(err))
	require.NotNil(t, record)

	// The mutation is visible in memory despite the failed write
	got, getErr := store.GetRecord(domain.CollGallery, record.ID())
	require.NoError(t, getErr)
	assert.Equal(t, "Unsaved", got["caption"])
}

func TestListPage_Windows(t *testing.T) {
	store, _ := newTestStore(t)

	courses := store.ListCollection(domain.CollCourses) // 6 records

	page, err := store.ListPage(domain.CollCourses, &domain.PageOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Records, 2)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
	assert.EqualValues(t, 6, page.Total)
	assert.Equal(t, courses[0].ID(), page.Records[0].ID())

	page, err = store.ListPage(domain.CollCourses, &domain.PageOptions{Offset: 4, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Records, 2)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	// Offset past the end yields an empty page, not an error
	page, err = store.ListPage(domain.CollCourses, &domain.PageOptions{Offset: 100})
	require.NoError(t, err)
	assert.Empty(t, page.Records)

	// Negative options are rejected
	_, err = store.ListPage(domain.CollCourses, &domain.PageOptions{Offset: -1})
	assert.Error(t, err)

	// A limit above MaxLimit is rejected up front, never silently clamped
	_, err = store.ListPage(domain.CollCourses, &domain.PageOptions{Limit: 20, MaxLimit: 10})
	assert.Error(t, err)
}
