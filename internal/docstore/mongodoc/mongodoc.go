// Package mongodoc stores documents in a MongoDB collection. Transactions
// need a replica set.
package mongodoc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matheus3301/chatsync/internal/docstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	documentsCollection = "documents"
	countersCollection  = "counters"
	sequenceID          = "documents"
)

type record struct {
	Path      string `bson:"_id"`
	Parent    string `bson:"parent"`
	Data      string `bson:"data"`
	CreateSeq int64  `bson:"createSeq"`
	UpdateSeq int64  `bson:"updateSeq"`
	CreatedAt int64  `bson:"createdAt"`
	UpdatedAt int64  `bson:"updatedAt"`
}

func (r *record) snapshot() *docstore.Snapshot {
	return &docstore.Snapshot{
		Path:      r.Path,
		Data:      []byte(r.Data),
		CreateSeq: r.CreateSeq,
		UpdateSeq: r.UpdateSeq,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Backend is a docstore.Backend over MongoDB.
type Backend struct {
	client   *mongo.Client
	db       *mongo.Database
	docs     *mongo.Collection
	counters *mongo.Collection
}

var _ docstore.Backend = (*Backend)(nil)

// Open connects to uri and uses the named database.
func Open(ctx context.Context, uri, database string) (*Backend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(database)
	return &Backend{
		client:   client,
		db:       db,
		docs:     db.Collection(documentsCollection),
		counters: db.Collection(countersCollection),
	}, nil
}

// EnsureIndexes creates the parent index used by collection listings.
func (b *Backend) EnsureIndexes(ctx context.Context) error {
	_, err := b.docs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "parent", Value: 1}, {Key: "createSeq", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create parent index: %w", err)
	}
	return nil
}

func (b *Backend) Get(ctx context.Context, path string) (*docstore.Snapshot, error) {
	return getDoc(ctx, b.docs, path)
}

func (b *Backend) List(ctx context.Context, collection string) ([]*docstore.Snapshot, error) {
	return listDocs(ctx, b.docs, collection)
}

func (b *Backend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}

// RunInTx runs fn inside a multi-document transaction. The driver retries
// fn on transient transaction errors.
func (b *Backend) RunInTx(ctx context.Context, fn func(ctx context.Context, tx docstore.BackendTx) error) error {
	sess, err := b.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(context.Background())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		t := &tx{b: b, ctx: sc, outer: ctx}
		return nil, fn(sc, t)
	})
	return err
}

// Follow tails the change stream and calls notify with every path another
// process touched. It returns when ctx ends or the stream fails.
func (b *Backend) Follow(ctx context.Context, notify func(paths ...string)) error {
	stream, err := b.docs.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return fmt.Errorf("open change stream: %w", err)
	}
	defer func() { _ = stream.Close(context.Background()) }()

	for stream.Next(ctx) {
		var ev struct {
			DocumentKey struct {
				ID string `bson:"_id"`
			} `bson:"documentKey"`
		}
		if err := stream.Decode(&ev); err != nil {
			continue
		}
		if ev.DocumentKey.ID != "" {
			notify(ev.DocumentKey.ID)
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	return stream.Err()
}

func getDoc(ctx context.Context, coll *mongo.Collection, path string) (*docstore.Snapshot, error) {
	var r record
	err := coll.FindOne(ctx, bson.M{"_id": path}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	return r.snapshot(), nil
}

func listDocs(ctx context.Context, coll *mongo.Collection, collection string) ([]*docstore.Snapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createSeq", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"parent": collection}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var out []*docstore.Snapshot
	for cursor.Next(ctx) {
		var r record
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		out = append(out, r.snapshot())
	}
	return out, cursor.Err()
}

type tx struct {
	b     *Backend
	ctx   mongo.SessionContext
	outer context.Context
	seq   int64
}

func (t *tx) Get(path string) (*docstore.Snapshot, error) {
	return getDoc(t.ctx, t.b.docs, path)
}

func (t *tx) List(collection string) ([]*docstore.Snapshot, error) {
	return listDocs(t.ctx, t.b.docs, collection)
}

// Now asks the server for its clock. hello is not allowed inside a
// transaction, so it runs on the outer context.
func (t *tx) Now() (int64, error) {
	var res struct {
		LocalTime time.Time `bson:"localTime"`
	}
	if err := t.b.db.RunCommand(t.outer, bson.D{{Key: "hello", Value: 1}}).Decode(&res); err != nil {
		return 0, fmt.Errorf("store clock: %w", err)
	}
	return res.LocalTime.UnixMilli(), nil
}

// Seq bumps the shared counter once per attempt. Concurrent transactions
// conflict on the counter document, which serializes writers.
func (t *tx) Seq() (int64, error) {
	if t.seq != 0 {
		return t.seq, nil
	}
	var res struct {
		Value int64 `bson:"value"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := t.b.counters.FindOneAndUpdate(t.ctx,
		bson.M{"_id": sequenceID},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&res)
	if err != nil {
		return 0, fmt.Errorf("bump sequence: %w", err)
	}
	t.seq = res.Value
	return t.seq, nil
}

func (t *tx) Put(s *docstore.Snapshot, _ bool) error {
	r := record{
		Path:      s.Path,
		Parent:    docstore.Parent(s.Path),
		Data:      string(s.Data),
		CreateSeq: s.CreateSeq,
		UpdateSeq: s.UpdateSeq,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	_, err := t.b.docs.ReplaceOne(t.ctx, bson.M{"_id": s.Path}, r, options.Replace().SetUpsert(true))
	return err
}

func (t *tx) Remove(path string) error {
	_, err := t.b.docs.DeleteOne(t.ctx, bson.M{"_id": path})
	return err
}
