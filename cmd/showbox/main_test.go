package main

import (
	"bytes"
	"testing"

	"github.com/mmcdole/showbox/internal/adapter"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/store"
)

type plainKV struct {
	values map[string]string
}

func (p *plainKV) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *plainKV) Set(key, value string) error {
	p.values[key] = value
	return nil
}

func (p *plainKV) Delete(key string) error {
	delete(p.values, key)
	return nil
}

func (p *plainKV) Close() error { return nil }

func TestClearState(t *testing.T) {
	kv := store.NewMemoryStore()
	kv.Set("show-list", `{"shows":[]}`)
	kv.Set("favorites", `{"favorites":[]}`)

	cleared, err := clearState(kv, adapter.NullLogger())
	if err != nil {
		t.Fatalf("clearState: %v", err)
	}
	if !cleared {
		t.Fatal("memory store was not cleared")
	}
	if keys := kv.Keys(); len(keys) != 0 {
		t.Errorf("keys after clear = %v", keys)
	}
}

func TestClearState_Unsupported(t *testing.T) {
	kv := &plainKV{values: map[string]string{"show-list": "x"}}

	cleared, err := clearState(kv, adapter.NullLogger())
	if err != nil || cleared {
		t.Errorf("clearState = %v, %v; want false, nil", cleared, err)
	}
	if _, ok := kv.Get("show-list"); !ok {
		t.Error("value removed by a backend without Clear")
	}
}

func TestPrintShow(t *testing.T) {
	rating := 8.5
	var buf bytes.Buffer
	printShow(&buf, domain.Show{ID: 7, Name: "Bare"})
	printShow(&buf, domain.Show{ID: 42, Name: "Rated", Premiered: "2020-01-01", Rating: &rating, IsFavorite: true})

	want := "        7  Bare\n★      42  Rated (2020)  8.5\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
