package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoltStore_SetGetDelete(t *testing.T) {
	st, err := NewBoltStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	defer st.Close()

	if _, ok := st.Get("show-list"); ok {
		t.Fatal("Get on empty store reported a value")
	}

	if err := st.Set("show-list", `{"page":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := st.Get("show-list"); !ok || v != `{"page":1}` {
		t.Errorf("Get = %q, %v; want %q, true", v, ok, `{"page":1}`)
	}

	if err := st.Delete("show-list"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := st.Get("show-list"); ok {
		t.Error("Get after Delete reported a value")
	}
	if err := st.Delete("never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	st, err := NewBoltStore(dir, "https://api.tvmaze.com")
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	if err := st.Set("favorites", "[1,2,3]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	path := st.Path()
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if filepath.Dir(filepath.Dir(path)) != dir {
		t.Errorf("db path %q is not namespaced under %q", path, dir)
	}

	st, err = NewBoltStore(dir, "https://api.tvmaze.com/")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()
	if st.Path() != path {
		t.Errorf("trailing slash changed namespace: %q vs %q", st.Path(), path)
	}
	if v, ok := st.Get("favorites"); !ok || v != "[1,2,3]" {
		t.Errorf("Get after reopen = %q, %v", v, ok)
	}
}

func TestBoltStore_KeysAndClear(t *testing.T) {
	for _, tc := range []struct {
		name string
		open func(t *testing.T) *BoltStore
	}{
		{"bolt", func(t *testing.T) *BoltStore {
			st, err := NewBoltStore(t.TempDir(), "")
			if err != nil {
				t.Fatalf("NewBoltStore: %v", err)
			}
			return st
		}},
		{"memory", func(t *testing.T) *BoltStore { return NewMemoryStore() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.open(t)
			defer st.Close()

			for _, k := range []string{"show-list", "favorites", "a"} {
				if err := st.Set(k, "x"); err != nil {
					t.Fatalf("Set(%q): %v", k, err)
				}
			}
			if diff := cmp.Diff([]string{"a", "favorites", "show-list"}, st.Keys()); diff != "" {
				t.Errorf("Keys mismatch (-want +got):\n%s", diff)
			}

			if err := st.Clear(); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if keys := st.Keys(); len(keys) != 0 {
				t.Errorf("Keys after Clear = %v", keys)
			}
		})
	}
}

func TestNewBoltStore_EmptyDirIsMemoryOnly(t *testing.T) {
	st, err := NewBoltStore("", "ignored")
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	if st.Path() != "" {
		t.Errorf("Path = %q, want memory-only", st.Path())
	}
	if err := st.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := st.Get("k"); v != "v" {
		t.Errorf("Get = %q", v)
	}
}

func TestOpen(t *testing.T) {
	if _, err := Open(Options{Driver: "floppy"}, nil); err == nil {
		t.Error("Open with unknown driver succeeded")
	}
	if _, err := Open(Options{Driver: DriverRedis}, nil); err == nil {
		t.Error("Open redis without URL succeeded")
	}

	st, err := Open(Options{Driver: DriverMemory}, nil)
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	st.Close()

	st, err = Open(Options{Dir: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("Open default driver: %v", err)
	}
	if bs, ok := st.(*BoltStore); !ok || bs.Path() == "" {
		t.Errorf("default driver = %T, want file-backed *BoltStore", st)
	}
	st.Close()
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	rs, err := NewRedisStoreFromURL("redis://localhost:6379/0", "", nil)
	if err != nil {
		t.Fatalf("NewRedisStoreFromURL: %v", err)
	}
	defer rs.Close()

	if got := rs.key("show-list"); got != "showbox:show-list" {
		t.Errorf("key = %q", got)
	}
	if _, err := NewRedisStoreFromURL("not a url", "", nil); err == nil {
		t.Error("bad URL accepted")
	}
}
