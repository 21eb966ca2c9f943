// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import (
	"testing"
	"time"

	"docstack/cli/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument("query", []byte(`{"stock":{"$gt":10},"sku":"B"}`))
	if err != nil {
		t.Fatalf("decodeDocument() error: %v", err)
	}
	// Key order must survive decoding; sort specifications depend on it.
	if len(doc) != 2 || doc[0].Key != "stock" || doc[1].Key != "sku" {
		t.Errorf("doc = %+v", doc)
	}

	if _, err := decodeDocument("query", []byte(`{"$oid":"not-a-real-oid"}`)); err != nil {
		if !errors.IsKind(err, errors.Payload) {
			t.Errorf("error kind = %v, want payload", err)
		}
	}

	empty, err := decodeDocument("query", nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("nil input: doc=%v err=%v", empty, err)
	}
}

func TestWithCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	doc := withCreatedAt(bson.D{{Key: "sku", Value: "C"}}, now)
	if len(doc) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	last := doc[len(doc)-1]
	if last.Key != "created_at" {
		t.Fatalf("last key = %q, want created_at", last.Key)
	}
	stamp, ok := last.Value.(string)
	if !ok {
		t.Fatalf("created_at is %T, want string", last.Value)
	}
	// The stamp must round-trip as text.
	parsed, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		t.Fatalf("created_at %q does not parse: %v", stamp, err)
	}
	if !parsed.Equal(now) {
		t.Errorf("created_at = %v, want %v", parsed, now)
	}
}

func TestWithCreatedAtKeepsCallerValue(t *testing.T) {
	doc := withCreatedAt(bson.D{
		{Key: "sku", Value: "C"},
		{Key: "created_at", Value: "2020-01-01T00:00:00Z"},
	}, time.Now())

	if len(doc) != 2 {
		t.Fatalf("caller timestamp displaced: %+v", doc)
	}
	if doc[1].Value != "2020-01-01T00:00:00Z" {
		t.Errorf("created_at = %v, want caller value", doc[1].Value)
	}
}

func TestDecodeIndexOptions(t *testing.T) {
	opts, err := decodeIndexOptions([]byte(`{"name":"sku_unique","unique":true,"sparse":false,"expireAfterSeconds":3600}`))
	if err != nil {
		t.Fatalf("decodeIndexOptions() error: %v", err)
	}
	if opts == nil {
		t.Fatal("nil builder")
	}

	if _, err := decodeIndexOptions([]byte(`{"unique":"yes"}`)); err == nil {
		t.Error("expected payload error for mistyped option")
	} else if !errors.IsKind(err, errors.Payload) {
		t.Errorf("error kind = %v, want payload", err)
	}

	if opts, err := decodeIndexOptions(nil); err != nil || opts == nil {
		t.Errorf("nil input: opts=%v err=%v", opts, err)
	}
}

func TestFormatInsertedID(t *testing.T) {
	oid := bson.NewObjectID()
	if got := formatInsertedID(oid); got != oid.Hex() {
		t.Errorf("object id = %q, want %q", got, oid.Hex())
	}
	if got := formatInsertedID("user-42"); got != "user-42" {
		t.Errorf("string id = %q", got)
	}
	if got := formatInsertedID(int64(7)); got != "7" {
		t.Errorf("numeric id = %q", got)
	}
}
