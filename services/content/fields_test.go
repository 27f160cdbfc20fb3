package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFieldExtraction(t *testing.T) {
	t.Run("numeric fields accept every wire width", func(t *testing.T) {
		assert.Equal(t, 7, intField(bson.M{"n": 7}, "n", 0))
		assert.Equal(t, 7, intField(bson.M{"n": int32(7)}, "n", 0))
		assert.Equal(t, 7, intField(bson.M{"n": int64(7)}, "n", 0))
		assert.Equal(t, 7, intField(bson.M{"n": 7.0}, "n", 0))
		assert.Equal(t, 3, intField(bson.M{"n": "seven"}, "n", 3))
		assert.Equal(t, 3, intField(bson.M{}, "n", 3))
	})

	t.Run("timestamps accept native and bson datetimes", func(t *testing.T) {
		now := time.Now().Truncate(time.Millisecond)

		got, ok := timeField(bson.M{"at": now}, "at")
		require.True(t, ok)
		assert.Equal(t, now, got)

		got, ok = timeField(bson.M{"at": primitive.NewDateTimeFromTime(now)}, "at")
		require.True(t, ok)
		assert.True(t, got.Equal(now))

		_, ok = timeField(bson.M{"at": "2024-01-01"}, "at")
		assert.False(t, ok)
	})

	t.Run("string slices keep only string elements", func(t *testing.T) {
		got := stringSliceField(bson.M{"r": primitive.A{"a", 1, "b", nil}}, "r")
		assert.Equal(t, []string{"a", "b"}, got)

		got = stringSliceField(bson.M{"r": []interface{}{"x", true}}, "r")
		assert.Equal(t, []string{"x"}, got)

		got = stringSliceField(bson.M{}, "r")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("id resolution prefers the explicit id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		assert.Equal(t, "abc", idField(bson.M{"id": "abc", "_id": oid}))
		assert.Equal(t, oid.Hex(), idField(bson.M{"_id": oid}))
		assert.Equal(t, "", idField(bson.M{}))
	})
}
