package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type testDoc struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string    `gorm:"column:email;unique"`
	Title     string    `gorm:"column:title"`
	Seats     int       `gorm:"column:seats"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (testDoc) TableName() string { return "test_docs" }

func newMemory(t *testing.T) Collection[testDoc] {
	t.Helper()
	col, err := NewMemoryCollection[testDoc]()
	require.NoError(t, err)
	return col
}

func TestMemoryInsertAssignsIDAndTimestamps(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()

	doc := &testDoc{Email: "a@x.com", Seats: 3}
	res, err := col.InsertOne(ctx, doc)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, doc.ID, res.InsertedID)
	assert.False(t, doc.CreatedAt.IsZero())

	got, err := col.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, 3, got.Seats)
}

func TestMemoryFindOneNotFound(t *testing.T) {
	col := newMemory(t)
	_, err := col.FindOne(context.Background(), Filter{"email": "nobody@x.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindOneReturnsCopy(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	_, err := col.InsertOne(ctx, &testDoc{Email: "a@x.com", Title: "before"})
	require.NoError(t, err)

	got, err := col.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := col.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "before", again.Title)
}

func TestMemoryInsertRejectsDuplicateUniqueColumn(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()

	_, err := col.InsertOne(ctx, &testDoc{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = col.InsertOne(ctx, &testDoc{Email: "a@x.com"})
	assert.Error(t, err)

	all, err := col.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryUpdateSetAndInc(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	doc := &testDoc{Email: "a@x.com", Title: "old", Seats: 5}
	_, err := col.InsertOne(ctx, doc)
	require.NoError(t, err)

	res, err := col.UpdateOne(ctx, Filter{"id": doc.ID}, Patch{
		Set: map[string]any{"title": "new"},
		Inc: map[string]int64{"seats": -1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)

	got, err := col.FindOne(ctx, Filter{"id": doc.ID})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, 4, got.Seats)
}

func TestMemoryUpdateWithoutMatch(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()

	res, err := col.UpdateOne(ctx, Filter{"id": uuid.New()}, Patch{Inc: map[string]int64{"seats": -1}})
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{}, res)

	all, err := col.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryUpsertStartsCounterFromZero(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	id := uuid.New()

	res, err := col.UpdateOne(ctx, Filter{"id": id}, Patch{Inc: map[string]int64{"seats": -1}}, UpdateOptions{Upsert: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.Equal(t, id, res.UpsertedID)

	got, err := col.FindOne(ctx, Filter{"id": id})
	require.NoError(t, err)
	assert.Equal(t, -1, got.Seats)
}

func TestMemoryDeleteOneRemovesFirstMatchOnly(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	_, err := col.InsertOne(ctx, &testDoc{Email: "a@x.com", Title: "same"})
	require.NoError(t, err)
	_, err = col.InsertOne(ctx, &testDoc{Email: "b@x.com", Title: "same"})
	require.NoError(t, err)

	res, err := col.DeleteOne(ctx, Filter{"title": "same"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	left, err := col.ListByFilter(ctx, Filter{"title": "same"})
	require.NoError(t, err)
	assert.Len(t, left, 1)

	res, err = col.DeleteOne(ctx, Filter{"email": "nobody@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
}

func TestMemoryListByFilterSorted(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	for i, seats := range []int{2, 9, 5} {
		_, err := col.InsertOne(ctx, &testDoc{Email: uuid.NewString(), Title: "t", Seats: seats})
		require.NoError(t, err, i)
	}

	desc, err := col.ListByFilter(ctx, Filter{"title": "t"}, FindOptions{SortBy: "seats", SortDir: Descending})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, []int{9, 5, 2}, []int{desc[0].Seats, desc[1].Seats, desc[2].Seats})

	asc, err := col.ListByFilter(ctx, nil, FindOptions{SortBy: "seats"})
	require.NoError(t, err)
	assert.Equal(t, 2, asc[0].Seats)
}

func TestMemoryUnknownColumn(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	_, err := col.InsertOne(ctx, &testDoc{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = col.FindOne(ctx, Filter{"nope": 1})
	assert.Error(t, err)

	_, err = col.UpdateOne(ctx, Filter{"email": "a@x.com"}, Patch{Set: map[string]any{"nope": 1}})
	assert.Error(t, err)
}

func TestMemoryCancelledContext(t *testing.T) {
	col := newMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := col.InsertOne(ctx, &testDoc{Email: "a@x.com"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = col.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryConcurrentIncrementsAreNotLost(t *testing.T) {
	col := newMemory(t)
	ctx := context.Background()
	doc := &testDoc{Email: "a@x.com", Seats: 1}
	_, err := col.InsertOne(ctx, doc)
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := col.UpdateOne(ctx, Filter{"id": doc.ID}, Patch{Inc: map[string]int64{"seats": -1}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := col.FindOne(ctx, Filter{"id": doc.ID})
	require.NoError(t, err)
	assert.Equal(t, 1-n, got.Seats)
}

type profileDoc struct {
	ID       uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Email    string            `gorm:"column:email"`
	Profile  datatypes.JSONMap `gorm:"column:profile"`
	Feedback *string           `gorm:"column:feedback"`
	Tags     []string          `gorm:"column:tags;serializer:json"`
}

func (profileDoc) TableName() string { return "profile_docs" }

func newProfiles(t *testing.T) Collection[profileDoc] {
	t.Helper()
	col, err := NewMemoryCollection[profileDoc]()
	require.NoError(t, err)
	return col
}

func TestMemoryReadsDoNotAliasStoredMaps(t *testing.T) {
	col := newProfiles(t)
	ctx := context.Background()
	_, err := col.InsertOne(ctx, &profileDoc{
		Email:   "a@x.com",
		Profile: datatypes.JSONMap{"city": "Bandung", "camera": map[string]any{"brand": "Fuji"}},
	})
	require.NoError(t, err)

	all, err := col.ListAll(ctx)
	require.NoError(t, err)
	all[0].Profile["city"] = "MUTATED"
	all[0].Profile["camera"].(map[string]any)["brand"] = "MUTATED"

	one, err := col.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	one.Profile["city"] = "MUTATED AGAIN"

	got, err := col.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Bandung", got.Profile["city"])
	assert.Equal(t, "Fuji", got.Profile["camera"].(map[string]any)["brand"])
}

func TestMemoryInsertDoesNotKeepCallerReferences(t *testing.T) {
	col := newProfiles(t)
	ctx := context.Background()
	note := "blurry"
	doc := &profileDoc{Email: "a@x.com", Profile: datatypes.JSONMap{"city": "Bandung"}, Feedback: &note, Tags: []string{"night"}}
	_, err := col.InsertOne(ctx, doc)
	require.NoError(t, err)

	doc.Profile["city"] = "MUTATED"
	note = "MUTATED"
	doc.Tags[0] = "MUTATED"

	got, err := col.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Bandung", got.Profile["city"])
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "blurry", *got.Feedback)
	assert.Equal(t, []string{"night"}, got.Tags)
}

func TestMemoryUpdateDoesNotKeepPatchReferences(t *testing.T) {
	col := newProfiles(t)
	ctx := context.Background()
	doc := &profileDoc{Email: "a@x.com"}
	_, err := col.InsertOne(ctx, doc)
	require.NoError(t, err)

	feedback := "too dark"
	_, err = col.UpdateOne(ctx, Filter{"id": doc.ID}, Patch{Set: map[string]any{"feedback": &feedback}})
	require.NoError(t, err)
	feedback = "MUTATED"

	got, err := col.FindOne(ctx, Filter{"id": doc.ID})
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "too dark", *got.Feedback)
}
