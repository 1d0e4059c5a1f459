package storage

import (
	"context"
	"errors"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	ctx := context.Background()
	key, err := store.Write(ctx, "exports/job-1/report.csv", []byte("Category,Item,Value\n"))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if key != "exports/job-1/report.csv" {
		t.Fatalf("Write key = %q", key)
	}

	data, err := store.Read(ctx, key)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(data) != "Category,Item,Value\n" {
		t.Fatalf("Read data = %q", data)
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if _, err := store.Read(context.Background(), "exports/absent.csv"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if _, err := store.Write(context.Background(), "../outside.csv", []byte("x")); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
}
