// Package service defines the lifecycle of long-lived subsystems
package service

// Service is a subsystem owning long-lived resources: audio output, the session loop
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags/env
//  3. Start() - open devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	// and stop after it
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
