package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"verdanta/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func staticFetch(docs []bson.M) FetchAll {
	return func(ctx context.Context) ([]bson.M, error) { return docs, nil }
}

func TestCollectionLoader_Load(t *testing.T) {
	now := time.Now()

	careersLoader := func(fetch FetchAll) CollectionLoader[models.CareerView] {
		return CollectionLoader[models.CareerView]{
			Name:      "careers",
			Fetch:     fetch,
			Normalize: NormalizeCareer,
			Filter:    ActiveOnly,
			Sort:      NewestFirst("createdAt"),
		}
	}

	t.Run("filters inactive and orders newest first", func(t *testing.T) {
		docs := []bson.M{
			{"id": "day-old", "title": "Agronomist", "active": true, "createdAt": now.Add(-24 * time.Hour)},
			{"id": "hour-old", "title": "Field Technician", "active": true, "createdAt": now.Add(-time.Hour)},
			{"id": "hidden", "title": "Driver", "active": false, "createdAt": now},
		}

		snap := careersLoader(staticFetch(docs)).Load(context.Background())

		require.False(t, snap.Loading)
		assert.Empty(t, snap.Error)
		require.Len(t, snap.Data, 2)
		assert.Equal(t, "hour-old", snap.Data[0].ID)
		assert.Equal(t, "day-old", snap.Data[1].ID)
	})

	t.Run("records missing the active flag are excluded", func(t *testing.T) {
		docs := []bson.M{
			{"id": "a", "active": true},
			{"id": "b"},
			{"id": "c", "active": "yes"},
		}

		snap := careersLoader(staticFetch(docs)).Load(context.Background())

		require.Len(t, snap.Data, 1)
		assert.Equal(t, "a", snap.Data[0].ID)
	})

	t.Run("missing fields normalize to declared defaults", func(t *testing.T) {
		snap := careersLoader(staticFetch([]bson.M{{"id": "bare", "active": true}})).Load(context.Background())

		require.Len(t, snap.Data, 1)
		view := snap.Data[0]
		assert.Equal(t, "", view.Title)
		assert.Equal(t, "full-time", view.Type)
		assert.NotNil(t, view.Requirements)
		assert.Empty(t, view.Requirements)
		assert.True(t, view.CreatedAt.IsZero())
	})

	t.Run("wrong-typed fields fall back to defaults", func(t *testing.T) {
		docs := []bson.M{{
			"id":           "odd",
			"active":       true,
			"title":        42,
			"requirements": "not a list",
			"createdAt":    "yesterday",
		}}

		snap := careersLoader(staticFetch(docs)).Load(context.Background())

		require.Len(t, snap.Data, 1)
		assert.Equal(t, "", snap.Data[0].Title)
		assert.Empty(t, snap.Data[0].Requirements)
		assert.True(t, snap.Data[0].CreatedAt.IsZero())
	})

	t.Run("pairs missing timestamps keep fetch order", func(t *testing.T) {
		docs := []bson.M{
			{"id": "first", "active": true},
			{"id": "second", "active": true},
			{"id": "dated", "active": true, "createdAt": now},
		}

		snap := careersLoader(staticFetch(docs)).Load(context.Background())

		require.Len(t, snap.Data, 3)
		assert.Equal(t, "first", snap.Data[0].ID)
		assert.Equal(t, "second", snap.Data[1].ID)
	})

	t.Run("store failure yields the empty default and an error", func(t *testing.T) {
		failing := func(ctx context.Context) ([]bson.M, error) {
			return nil, errors.New("connection reset")
		}

		snap := careersLoader(failing).Load(context.Background())

		assert.False(t, snap.Loading)
		assert.NotEmpty(t, snap.Error)
		require.NotNil(t, snap.Data)
		assert.Empty(t, snap.Data)
	})
}

func TestSingletonLoader_Load(t *testing.T) {
	heroLoader := func(fetch FetchOne) SingletonLoader[models.HeroView] {
		return SingletonLoader[models.HeroView]{
			Name:      "hero:about",
			Fetch:     fetch,
			Normalize: NormalizeHero,
		}
	}

	t.Run("loads and normalizes the document", func(t *testing.T) {
		fetch := func(ctx context.Context) (bson.M, error) {
			return bson.M{"slug": "about", "heading": "Rooted in the land"}, nil
		}

		snap := heroLoader(fetch).Load(context.Background())

		require.False(t, snap.Loading)
		require.NotNil(t, snap.Data)
		assert.Equal(t, "Rooted in the land", snap.Data.Heading)
		assert.Equal(t, "", snap.Data.Subheading)
	})

	t.Run("not found completes with all defaults", func(t *testing.T) {
		fetch := func(ctx context.Context) (bson.M, error) { return nil, nil }

		snap := heroLoader(fetch).Load(context.Background())

		assert.Empty(t, snap.Error)
		require.NotNil(t, snap.Data)
		assert.Equal(t, models.HeroView{}, *snap.Data)
	})

	t.Run("store failure yields nil data and an error", func(t *testing.T) {
		fetch := func(ctx context.Context) (bson.M, error) {
			return nil, errors.New("permission denied")
		}

		snap := heroLoader(fetch).Load(context.Background())

		assert.False(t, snap.Loading)
		assert.Nil(t, snap.Data)
		assert.NotEmpty(t, snap.Error)
	})
}
