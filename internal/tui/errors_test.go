package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mmcdole/showbox/internal/adapter/tvmaze"
	"github.com/mmcdole/showbox/internal/domain"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"status with message", &tvmaze.StatusError{Code: 500, Message: "boom"}, "Error 500: boom"},
		{"status without message", &tvmaze.StatusError{Code: 503}, "Error 503: Service Unavailable"},
		{"wrapped status", fmt.Errorf("get shows: %w", &tvmaze.StatusError{Code: 400, Message: "bad page"}), "Error 400: bad page"},
		{"rate limited", domain.ErrRateLimited, "Error 429: catalog rate limit exceeded"},
		{"not found", fmt.Errorf("show 9: %w", domain.ErrShowNotFound), "Error 404: show 9: show not found"},
		{"transport", domain.ErrCatalogUnavailable, "Error 0: catalog is unreachable"},
		{"timeout", fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, context.DeadlineExceeded), "Error 0: catalog is unreachable: context deadline exceeded"},
		{"other", errors.New("nope"), "Error: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatError(tt.err); got != tt.want {
				t.Errorf("FormatError() = %q, want %q", got, tt.want)
			}
		})
	}
}
