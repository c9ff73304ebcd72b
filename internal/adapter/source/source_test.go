package source

import (
	"testing"

	"github.com/mmcdole/showbox/internal/adapter"
	"github.com/mmcdole/showbox/internal/adapter/tvmaze"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *SourceConfig
		wantErr bool
	}{
		{"nil config", nil, true},
		{"default type", &SourceConfig{}, false},
		{"tvmaze with url", &SourceConfig{Type: adapter.CatalogTypeTVMaze, URL: "http://localhost:8080"}, false},
		{"unknown type", &SourceConfig{Type: "imdb"}, true},
		{"relative url", &SourceConfig{URL: "api.tvmaze.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewClient error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if _, ok := c.(*tvmaze.Client); !ok {
					t.Errorf("NewClient returned %T", c)
				}
			}
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	cfg := adapter.DefaultConfig()
	if _, err := NewClientFromConfig(cfg, nil); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}
