package tui

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mmcdole/showbox/internal/adapter/tvmaze"
	"github.com/mmcdole/showbox/internal/domain"
)

// FormatError renders err for the status line as "Error <status>: <message>".
// Transport failures have no status and are shown as status 0.
func FormatError(err error) string {
	var statusErr *tvmaze.StatusError
	switch {
	case errors.As(err, &statusErr):
		msg := statusErr.Message
		if msg == "" {
			msg = http.StatusText(statusErr.Code)
		}
		return fmt.Sprintf("Error %d: %s", statusErr.Code, msg)
	case errors.Is(err, domain.ErrRateLimited):
		return fmt.Sprintf("Error %d: %s", http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrShowNotFound), errors.Is(err, domain.ErrPersonNotFound):
		return fmt.Sprintf("Error %d: %s", http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return fmt.Sprintf("Error 0: %s", err.Error())
	}
	return "Error: " + err.Error()
}
