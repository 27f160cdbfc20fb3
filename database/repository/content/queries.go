package contentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListAll returns every raw document in a collection, in fetch order.
// Filtering and ordering are left to the caller so that records missing
// timestamps keep their fetch position.
func (r *mongoContentRepo) ListAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetBySlug returns the singleton document addressed by slug, or nil when
// no such document exists. Absence is not an error.
func (r *mongoContentRepo) GetBySlug(ctx context.Context, collection, slug string) (bson.M, error) {
	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
