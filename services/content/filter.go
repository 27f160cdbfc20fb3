package content

import "go.mongodb.org/mongo-driver/bson"

// ActiveOnly keeps records whose publish flag is strictly true. Records
// missing the flag, or carrying it with a non-boolean value, are excluded.
// Both spellings seen in stored content are honored.
func ActiveOnly(m bson.M) bool {
	if v, ok := m["active"].(bool); ok {
		return v
	}
	if v, ok := m["isActive"].(bool); ok {
		return v
	}
	return false
}
