// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"
	"docstack/cli/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// documentBackend talks the MongoDB wire protocol, which both the
// wire-protocol server and the document-extension gateway accept.
type documentBackend struct {
	client   *mongo.Client
	database string
}

func newDocumentBackend(ctx context.Context, desc config.Descriptor) (*documentBackend, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(desc.Endpoint))
	if err != nil {
		return nil, err
	}
	// Connect does not dial; ping so connection failures surface here and
	// not halfway through the request.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return &documentBackend{client: client, database: desc.Namespace}, nil
}

func (b *documentBackend) Execute(ctx context.Context, req *cliargs.Request) (*Result, error) {
	coll := b.client.Database(b.database).Collection(req.Target)

	switch req.Mode {
	case cliargs.DocumentFind:
		return b.find(ctx, coll, req)
	case cliargs.DocumentInsert:
		return b.insert(ctx, coll, req)
	case cliargs.CreateIndex:
		return b.createIndex(ctx, coll, req)
	}
	return nil, errors.Newf(errors.Usage, "the document backend does not support %s", req.Mode)
}

func (b *documentBackend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}

func (b *documentBackend) find(ctx context.Context, coll *mongo.Collection, req *cliargs.Request) (*Result, error) {
	filter, err := decodeDocument("query", req.Filter)
	if err != nil {
		return nil, err
	}
	projection, err := decodeDocument("project", req.Projection)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetLimit(req.Limit)
	if len(projection) > 0 {
		opts.SetProjection(projection)
	}
	if len(req.Sort) > 0 {
		sort, err := decodeDocument("sort", req.Sort)
		if err != nil {
			return nil, err
		}
		opts.SetSort(sort)
	}

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(errors.Backend, "find failed", err)
	}
	defer cur.Close(ctx)

	res := &Result{Documents: []json.RawMessage{}}
	for cur.Next(ctx) {
		ext, err := bson.MarshalExtJSON(cur.Current, false, false)
		if err != nil {
			return nil, errors.Wrap(errors.Backend, "decoding document", err)
		}
		res.Documents = append(res.Documents, json.RawMessage(ext))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.Backend, "find failed", err)
	}
	return res, nil
}

func (b *documentBackend) insert(ctx context.Context, coll *mongo.Collection, req *cliargs.Request) (*Result, error) {
	doc, err := decodeDocument("insert", req.Payload)
	if err != nil {
		return nil, err
	}
	doc = withCreatedAt(doc, time.Now())

	ir, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(errors.Backend, "insert failed", err)
	}
	return &Result{Ack: &Ack{InsertedID: formatInsertedID(ir.InsertedID)}}, nil
}

func (b *documentBackend) createIndex(ctx context.Context, coll *mongo.Collection, req *cliargs.Request) (*Result, error) {
	keys, err := decodeDocument("create-index", req.IndexKeys)
	if err != nil {
		return nil, err
	}
	opts, err := decodeIndexOptions(req.IndexOptions)
	if err != nil {
		return nil, err
	}

	name, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		return nil, errors.Wrap(errors.Backend, "index creation failed", err)
	}
	return &Result{Ack: &Ack{Index: name}}, nil
}

// decodeDocument parses relaxed extended JSON into an order-preserving
// document. The argument parser already checked JSON validity, but extended
// JSON has its own rules (e.g. reserved $-keys), so failures here are still
// payload errors.
func decodeDocument(flag string, raw json.RawMessage) (bson.D, error) {
	if len(raw) == 0 {
		return bson.D{}, nil
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return nil, errors.Wrap(errors.Payload, "--"+flag+" is not a valid document", err)
	}
	return doc, nil
}

// withCreatedAt injects a created_at timestamp unless the payload carries one.
// The wall-clock time is recorded in RFC 3339 form so it round-trips as text.
func withCreatedAt(doc bson.D, now time.Time) bson.D {
	for _, e := range doc {
		if e.Key == "created_at" {
			return doc
		}
	}
	return append(doc, bson.E{Key: "created_at", Value: now.UTC().Format(time.RFC3339Nano)})
}

// indexOptions is the subset of index options the gateway accepts.
type indexOptions struct {
	Name               *string `json:"name"`
	Unique             *bool   `json:"unique"`
	Sparse             *bool   `json:"sparse"`
	ExpireAfterSeconds *int32  `json:"expireAfterSeconds"`
}

func decodeIndexOptions(raw json.RawMessage) (*options.IndexOptionsBuilder, error) {
	opts := options.Index()
	if len(raw) == 0 {
		return opts, nil
	}
	var io indexOptions
	if err := json.Unmarshal(raw, &io); err != nil {
		return nil, errors.Wrap(errors.Payload, "--index-options is not a valid document", err)
	}
	if io.Name != nil {
		opts.SetName(*io.Name)
	}
	if io.Unique != nil {
		opts.SetUnique(*io.Unique)
	}
	if io.Sparse != nil {
		opts.SetSparse(*io.Sparse)
	}
	if io.ExpireAfterSeconds != nil {
		opts.SetExpireAfterSeconds(*io.ExpireAfterSeconds)
	}
	return opts, nil
}

func formatInsertedID(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
