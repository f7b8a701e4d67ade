package display

// Actions are the user intents a surface forwards to the session runtime
type Actions interface {
	RequestStart() error
	RequestCancel() error
	// Background must tear the session down before returning
	Background() error
}
