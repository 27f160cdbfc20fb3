package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Typed field extraction over raw documents. A value that is absent or of
// the wrong type yields the declared default, never a panic, so that
// normalization is total.

func stringField(m bson.M, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func intField(m bson.M, key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// timeField reports whether the record carries a usable timestamp at key.
// Mongo hands timestamps back as primitive.DateTime; in-memory sources use
// time.Time directly.
func timeField(m bson.M, key string) (time.Time, bool) {
	switch v := m[key].(type) {
	case time.Time:
		return v, true
	case primitive.DateTime:
		return v.Time(), true
	}
	return time.Time{}, false
}

func timeFieldOrZero(m bson.M, key string) time.Time {
	t, _ := timeField(m, key)
	return t
}

// stringSliceField keeps only string elements and always returns a
// non-nil slice.
func stringSliceField(m bson.M, key string) []string {
	out := []string{}
	switch v := m[key].(type) {
	case []string:
		out = append(out, v...)
	case primitive.A:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// idField resolves the record identifier: an explicit string "id" wins,
// then the mongo object id, then empty.
func idField(m bson.M) string {
	if v, ok := m["id"].(string); ok {
		return v
	}
	if oid, ok := m["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
