package pebblestore

import (
	"errors"
	"testing"
)

func openTestDB(t *testing.T, fsync FsyncMode) *DB {
	t.Helper()
	db, err := Open(Options{DataDir: t.TempDir(), Fsync: fsync})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenRequiresDataDir(t *testing.T) {
	if _, err := Open(Options{}); err == nil {
		t.Fatalf("expected error for empty DataDir")
	}
}

func TestSetGetDelete(t *testing.T) {
	db := openTestDB(t, FsyncModeNever)

	if err := db.Set([]byte("k1"), []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := db.Get([]byte("k1"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("value: %q", got)
	}

	if err := db.Delete([]byte("k1")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Get([]byte("k1")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete: %v", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	db := openTestDB(t, FsyncModeNever)
	if _, err := db.Get([]byte("absent")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing key: %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	db := openTestDB(t, FsyncModeNever)
	if err := db.Set([]byte("k"), []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := db.Get([]byte("k"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got[0] = 'z'
	again, err := db.Get([]byte("k"))
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if string(again) != "abc" {
		t.Fatalf("stored value mutated: %q", again)
	}
}

func TestDeleteRange(t *testing.T) {
	db := openTestDB(t, FsyncModeAlways)

	keys := []string{"a/1", "a/2", "b/1"}
	for _, k := range keys {
		if err := db.Set([]byte(k), []byte("x")); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if err := db.DeleteRange([]byte("a/"), []byte("a0")); err != nil {
		t.Fatalf("delete range: %v", err)
	}
	for _, k := range []string{"a/1", "a/2"} {
		if _, err := db.Get([]byte(k)); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s survived range delete: %v", k, err)
		}
	}
	if _, err := db.Get([]byte("b/1")); err != nil {
		t.Fatalf("b/1 deleted: %v", err)
	}
}

func TestIterateRange(t *testing.T) {
	db := openTestDB(t, FsyncModeInterval)

	for _, k := range []string{"p/1", "p/2", "q/1"} {
		if err := db.Set([]byte(k), []byte(k)); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	iter, err := db.NewIter(nil)
	if err != nil {
		t.Fatalf("new iter: %v", err)
	}
	defer iter.Close()

	var seen []string
	for iter.First(); iter.Valid(); iter.Next() {
		seen = append(seen, string(iter.Key()))
	}
	if len(seen) != 3 || seen[0] != "p/1" || seen[2] != "q/1" {
		t.Fatalf("iteration order: %v", seen)
	}
}
