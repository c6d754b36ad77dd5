// Package docstore wraps the CRUD calls of the MongoDB blog walkthrough.
package docstore

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
)

// URI builds a mongodb:// connection string. The password is escaped so
// characters like @ and : survive.
func URI(cfg config.MongoConfig) string {
	u := url.URL{
		Scheme:   "mongodb",
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/",
		RawQuery: "authSource=" + url.QueryEscape(cfg.AuthDB),
	}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u.String()
}

// Store is a client bound to one database and collection.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	coll   *mongo.Collection
	log    *zap.Logger
}

// Connect dials the server described by cfg. The driver connects lazily, so
// an unreachable server shows up on the first operation.
func Connect(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*Store, error) {
	opts := options.Client().
		ApplyURI(URI(cfg)).
		SetServerSelectionTimeout(cfg.Timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	return New(client, cfg.Database, cfg.Collection, log), nil
}

func New(client *mongo.Client, database, collection string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	db := client.Database(database)
	return &Store{
		client: client,
		db:     db,
		coll:   db.Collection(collection),
		log:    log.With(zap.String("database", database), zap.String("collection", collection)),
	}
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx, readpref.Primary()), "ping")
}

func (s *Store) DatabaseExists(ctx context.Context) (bool, error) {
	names, err := s.client.ListDatabaseNames(ctx, bson.D{})
	if err != nil {
		return false, errors.Wrap(err, "list databases")
	}
	return slices.Contains(names, s.db.Name()), nil
}

func (s *Store) CollectionExists(ctx context.Context) (bool, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return false, errors.Wrap(err, "list collections")
	}
	return slices.Contains(names, s.coll.Name()), nil
}

// InsertOne returns the id of the new document.
func (s *Store) InsertOne(ctx context.Context, doc any) (any, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(err, "insert one")
	}
	s.log.Debug("inserted", zap.Any("id", res.InsertedID))
	return res.InsertedID, nil
}

// InsertMany returns the number of inserted documents. An empty input inserts
// nothing and is not an error.
func (s *Store) InsertMany(ctx context.Context, docs []any) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, errors.Wrap(err, "insert many")
	}
	return len(res.InsertedIDs), nil
}

// FindFirst returns the first match, or nil when nothing matches.
// A nil projection returns whole documents.
func (s *Store) FindFirst(ctx context.Context, filter, projection any) (bson.M, error) {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var doc bson.M
	err := s.coll.FindOne(ctx, orAll(filter), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find one")
	}
	return doc, nil
}

func (s *Store) FindAll(ctx context.Context, filter, projection any) ([]bson.M, error) {
	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}
	cur, err := s.coll.Find(ctx, orAll(filter), opts)
	if err != nil {
		return nil, errors.Wrap(err, "find")
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "read cursor")
	}
	return docs, nil
}

// UpdateOne applies $set to the first match and returns the modified count.
func (s *Store) UpdateOne(ctx context.Context, filter any, set bson.M) (int64, error) {
	res, err := s.coll.UpdateOne(ctx, orAll(filter), bson.M{"$set": set})
	if err != nil {
		return 0, errors.Wrap(err, "update one")
	}
	return res.ModifiedCount, nil
}

func (s *Store) UpdateAll(ctx context.Context, filter any, set bson.M) (int64, error) {
	res, err := s.coll.UpdateMany(ctx, orAll(filter), bson.M{"$set": set})
	if err != nil {
		return 0, errors.Wrap(err, "update many")
	}
	return res.ModifiedCount, nil
}

func (s *Store) DeleteOne(ctx context.Context, filter any) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, orAll(filter))
	if err != nil {
		return 0, errors.Wrap(err, "delete one")
	}
	return res.DeletedCount, nil
}

func (s *Store) DeleteMany(ctx context.Context, filter any) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, orAll(filter))
	if err != nil {
		return 0, errors.Wrap(err, "delete many")
	}
	return res.DeletedCount, nil
}

// Clear removes every document but keeps the collection.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	return s.DeleteMany(ctx, bson.D{})
}

func (s *Store) DropCollection(ctx context.Context) error {
	return errors.Wrapf(s.coll.Drop(ctx), "drop collection %s", s.coll.Name())
}

func (s *Store) DropDatabase(ctx context.Context) error {
	return errors.Wrapf(s.db.Drop(ctx), "drop database %s", s.db.Name())
}

func (s *Store) DatabaseName() string   { return s.db.Name() }
func (s *Store) CollectionName() string { return s.coll.Name() }

func orAll(filter any) any {
	if filter == nil {
		return bson.D{}
	}
	return filter
}
