package favorites

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/store"
)

func show(id int, name string) domain.Show {
	return domain.Show{ID: id, Name: name, Genres: []string{}}
}

func TestAddRemoveToggle(t *testing.T) {
	s := New(nil, nil)

	if !s.Add(show(1, "Lost")) {
		t.Fatal("Add reported duplicate on empty store")
	}
	if s.Add(show(1, "Lost")) {
		t.Error("second Add of the same id reported added")
	}
	if !s.Toggle(show(2, "Fringe")) {
		t.Error("Toggle of a new show should favorite it")
	}
	if diff := cmp.Diff([]int{1, 2}, s.IDs()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}

	if s.Toggle(show(1, "Lost")) {
		t.Error("Toggle of a favorite should remove it")
	}
	if s.Contains(1) || !s.Contains(2) || s.Count() != 1 {
		t.Errorf("after toggle: ids %v", s.IDs())
	}
	if s.Remove(1) {
		t.Error("Remove of a missing id reported ok")
	}
}

func TestPutReplacesInPlace(t *testing.T) {
	s := New(nil, nil)
	s.Add(show(1, "Lost"))
	s.Add(show(2, "Fringe"))
	s.Put(show(1, "Lost (2004)"))

	list := s.List()
	if diff := cmp.Diff([]string{"Lost (2004)", "Fringe"}, []string{list[0].Name, list[1].Name}); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	for _, sh := range list {
		if !sh.IsFavorite {
			t.Errorf("show %d not marked favorite", sh.ID)
		}
	}
}

func TestPersistAndHydrate(t *testing.T) {
	kv := store.NewMemoryStore()
	s := New(kv, nil)
	s.Add(show(3, "Dark"))
	s.Add(show(1, "Lost"))
	s.Remove(3)
	s.Add(show(7, "Severance"))

	restored := New(kv, nil)
	if diff := cmp.Diff(s.List(), restored.List()); diff != "" {
		t.Errorf("restored favorites (-want +got):\n%s", diff)
	}

	raw, _ := kv.Get(StorageKey)
	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if string(data) != raw {
		t.Errorf("persisted %s, snapshot %s", raw, data)
	}
}

func TestHydrate_Malformed(t *testing.T) {
	kv := store.NewMemoryStore()
	if err := kv.Set(StorageKey, "[not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s := New(kv, nil)
	if s.Count() != 0 {
		t.Errorf("Count = %d, want 0", s.Count())
	}
}

func TestResetAndObserver(t *testing.T) {
	s := New(store.NewMemoryStore(), nil)
	calls := 0
	s.SetObserver(domain.ObserverFunc(func() { calls++ }))

	s.Add(show(1, "Lost"))
	s.Add(show(1, "Lost"))
	s.Reset()

	if calls != 2 {
		t.Errorf("observer called %d times, want 2", calls)
	}
	if s.Count() != 0 {
		t.Errorf("Count after Reset = %d", s.Count())
	}
	data, _ := s.Snapshot()
	if string(data) != `{"favorites":[]}` {
		t.Errorf("empty snapshot = %s", data)
	}
}

func TestFilter(t *testing.T) {
	s := New(nil, nil)
	s.Add(show(1, "The Office (US)"))
	s.Add(show(2, "Fringe"))
	s.Add(show(3, "Office"))

	var got []int
	for _, sh := range s.Filter("office") {
		got = append(got, sh.ID)
	}
	if diff := cmp.Diff([]int{3, 1}, got); diff != "" {
		t.Errorf("Filter (-want +got):\n%s", diff)
	}
}
