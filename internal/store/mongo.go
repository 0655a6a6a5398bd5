package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// Mongo implements Store on top of a *mongo.Database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return parent, func() {}
	}
	return context.WithTimeout(parent, opTimeout)
}

func (m *Mongo) Insert(parent context.Context, collection string, doc any) (string, error) {
	ctx, cancel := m.ctx(parent)
	defer cancel()

	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicate
		}
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (m *Mongo) FindByID(parent context.Context, collection, id string, out any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := m.ctx(parent)
	defer cancel()

	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) FindOne(parent context.Context, collection string, filter map[string]any, out any) error {
	ctx, cancel := m.ctx(parent)
	defer cancel()

	err := m.db.Collection(collection).FindOne(ctx, bson.M(filter)).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) FindAll(parent context.Context, collection string, opts ListOptions, out any) error {
	ctx, cancel := m.ctx(parent)
	defer cancel()

	fo := options.Find()
	if opts.SortBy != "" {
		order := 1
		if opts.Desc {
			order = -1
		}
		fo.SetSort(bson.D{{Key: opts.SortBy, Value: order}})
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}

	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{}, fo)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (m *Mongo) UpdateByID(parent context.Context, collection, id string, set map[string]any, out any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := m.ctx(parent)
	defer cancel()

	after := options.After
	err = m.db.Collection(collection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M(set)},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (m *Mongo) DeleteByID(parent context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := m.ctx(parent)
	defer cancel()

	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Count(parent context.Context, collection string) (int64, error) {
	ctx, cancel := m.ctx(parent)
	defer cancel()

	return m.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func (m *Mongo) CountFiltered(parent context.Context, collection string, filter map[string]any) (int64, error) {
	ctx, cancel := m.ctx(parent)
	defer cancel()

	return m.db.Collection(collection).CountDocuments(ctx, bson.M(filter))
}
