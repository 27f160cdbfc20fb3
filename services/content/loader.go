package content

import (
	"context"
	"sort"

	"verdanta/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// FetchAll retrieves the raw documents of one collection source.
type FetchAll func(ctx context.Context) ([]bson.M, error)

// FetchOne retrieves one raw singleton document. A nil map means not found.
type FetchOne func(ctx context.Context) (bson.M, error)

// CollectionLoader turns one collection source into normalized view models.
// Filter and Sort run on the raw records before normalization; both are
// optional. Sort must be a stable comparator: negative puts a first, zero
// keeps the pair in fetch order.
type CollectionLoader[T any] struct {
	Name      string
	Fetch     FetchAll
	Normalize func(bson.M) T
	Filter    func(bson.M) bool
	Sort      func(a, b bson.M) int
}

// Load runs fetch, filter, sort and normalization and returns a completed
// snapshot. Store failures never escape: they are logged and folded into
// the snapshot, with Data left at its empty default.
func (l CollectionLoader[T]) Load(ctx context.Context) Snapshot[[]T] {
	snap := NewSnapshot[[]T]()

	raw, err := l.Fetch(ctx)
	if err != nil {
		retErr := RetrievalError{Source: l.Name, Err: err}
		utils.GetLogger().Warn("content fetch failed", zap.String("source", l.Name), zap.Error(retErr))
		return snap.fail([]T{}, "failed to load "+l.Name)
	}

	if l.Filter != nil {
		kept := make([]bson.M, 0, len(raw))
		for _, doc := range raw {
			if l.Filter(doc) {
				kept = append(kept, doc)
			}
		}
		raw = kept
	}

	if l.Sort != nil {
		sort.SliceStable(raw, func(i, j int) bool {
			return l.Sort(raw[i], raw[j]) < 0
		})
	}

	views := make([]T, 0, len(raw))
	for _, doc := range raw {
		views = append(views, l.Normalize(doc))
	}
	return snap.complete(views)
}

// SingletonLoader turns one slug-addressed document into a normalized view.
// A missing document is not a failure: it completes with the normalized
// empty record, so every declared field carries its default.
type SingletonLoader[T any] struct {
	Name      string
	Fetch     FetchOne
	Normalize func(bson.M) T
}

// Load returns a completed snapshot. On store failure Data is nil and the
// error message is set; the caller renders its fallback state.
func (l SingletonLoader[T]) Load(ctx context.Context) Snapshot[*T] {
	snap := NewSnapshot[*T]()

	raw, err := l.Fetch(ctx)
	if err != nil {
		retErr := RetrievalError{Source: l.Name, Err: err}
		utils.GetLogger().Warn("content fetch failed", zap.String("source", l.Name), zap.Error(retErr))
		return snap.fail(nil, "failed to load "+l.Name)
	}
	if raw == nil {
		raw = bson.M{}
	}
	view := l.Normalize(raw)
	return snap.complete(&view)
}
