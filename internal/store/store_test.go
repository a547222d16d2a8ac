package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/chatsync/internal/model"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateAppliesOnFreshDB(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so this run checks idempotency.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 1 {
		t.Errorf("version = %d, want 1", result.Version)
	}
}

func TestOutboxLifecycle(t *testing.T) {
	db := testDB(t)

	entry := OutboxEntry{MessageID: "m1", TempID: "local-1", ChatID: "a_b", SenderID: "a", Body: "hi"}
	if err := db.BeginSend(entry); err != nil {
		t.Fatal(err)
	}
	got, err := db.GetOutbox("m1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Status != OutboxSending || got.TempID != "local-1" {
		t.Fatalf("unexpected entry %+v", got)
	}

	if err := db.MarkOutboxFailed("m1", "timeout"); err != nil {
		t.Fatal(err)
	}
	failed, err := db.FailedSends("a", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "timeout" {
		t.Fatalf("unexpected failed sends %+v", failed)
	}
	if other, _ := db.FailedSends("a", "a_c"); len(other) != 0 {
		t.Fatalf("chat filter leaked %+v", other)
	}

	// A retry re-uses the message id and resets the entry.
	entry.TempID = "local-2"
	if err := db.BeginSend(entry); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetOutbox("m1")
	if got.Status != OutboxSending || got.ErrorMessage != "" || got.TempID != "local-2" {
		t.Fatalf("retry did not reset entry: %+v", got)
	}

	if err := db.MarkOutboxSent("m1"); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetOutbox("m1")
	if got.Status != OutboxSent {
		t.Fatalf("status = %q, want sent", got.Status)
	}

	missing, err := db.GetOutbox("nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil entry, got %+v err=%v", missing, err)
	}
}

func TestStaleSending(t *testing.T) {
	db := testDB(t)
	for _, id := range []string{"m1", "m2"} {
		if err := db.BeginSend(OutboxEntry{MessageID: id, ChatID: "a_b", SenderID: "a"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.MarkOutboxSent("m2"); err != nil {
		t.Fatal(err)
	}

	stale, err := db.StaleSending(time.Now().Add(time.Minute).UnixMilli())
	if err != nil {
		t.Fatal(err)
	}
	if len(stale) != 1 || stale[0].MessageID != "m1" {
		t.Fatalf("unexpected stale entries %+v", stale)
	}

	stale, err = db.StaleSending(time.Now().Add(-time.Minute).UnixMilli())
	if err != nil {
		t.Fatal(err)
	}
	if len(stale) != 0 {
		t.Fatalf("fresh entries reported stale: %+v", stale)
	}
}

func TestDrafts(t *testing.T) {
	db := testDB(t)

	d, err := db.GetDraft("a", "a_b")
	if err != nil || d != nil {
		t.Fatalf("expected no draft, got %+v err=%v", d, err)
	}

	reply := &model.ReplyTo{MessageID: "m0", Text: "earlier", SenderID: "b", SenderName: "Bob"}
	if err := db.SaveDraft(Draft{UserID: "a", ChatID: "a_b", Text: "typing", ReplyTo: reply, RetryID: "m9"}); err != nil {
		t.Fatal(err)
	}
	d, err = db.GetDraft("a", "a_b")
	if err != nil {
		t.Fatal(err)
	}
	if d.Text != "typing" || d.RetryID != "m9" || d.ReplyTo == nil || *d.ReplyTo != *reply {
		t.Fatalf("unexpected draft %+v", d)
	}

	if err := db.SaveDraft(Draft{UserID: "a", ChatID: "a_b", Text: "changed"}); err != nil {
		t.Fatal(err)
	}
	d, _ = db.GetDraft("a", "a_b")
	if d.Text != "changed" || d.ReplyTo != nil || d.RetryID != "" {
		t.Fatalf("upsert did not replace draft: %+v", d)
	}

	// Saving an empty draft clears it.
	if err := db.SaveDraft(Draft{UserID: "a", ChatID: "a_b"}); err != nil {
		t.Fatal(err)
	}
	if d, _ := db.GetDraft("a", "a_b"); d != nil {
		t.Fatalf("expected draft cleared, got %+v", d)
	}
}
