package domain

// KeyValueStore is the persistence adapter used by the state stores.
// Values are opaque strings; keys are fixed per store ("show-list", "favorites").
type KeyValueStore interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool)

	// Set overwrites the value for key
	Set(key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(key string) error

	Close() error
}

// StoreObserver receives a notification after every state change.
type StoreObserver interface {
	OnChange()
}

// ObserverFunc adapts a plain function to StoreObserver.
type ObserverFunc func()

func (f ObserverFunc) OnChange() { f() }

// NoOpObserver discards notifications (for testing/batch operations).
type NoOpObserver struct{}

func (NoOpObserver) OnChange() {}
