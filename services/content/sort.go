package content

import "go.mongodb.org/mongo-driver/bson"

// NewestFirst orders two raw records descending by the named timestamp
// field. A pair where either side lacks the field compares equal, so the
// stable sort keeps their fetch order.
func NewestFirst(field string) func(a, b bson.M) int {
	return func(a, b bson.M) int {
		ta, oka := timeField(a, field)
		tb, okb := timeField(b, field)
		if !oka || !okb {
			return 0
		}
		switch {
		case ta.After(tb):
			return -1
		case tb.After(ta):
			return 1
		}
		return 0
	}
}
