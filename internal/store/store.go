// Package store provides the persistent key/value adapter the state container
// saves the workspace blob through. The contract is deliberately tiny: get and
// set one string value under one key, against whatever durable local medium
// the deployment picked at startup. No delete, no list, no transactions beyond
// last-write-wins.
package store

import "context"

// Adapter is the medium-agnostic persistence contract.
//
// Get returns (value, true, nil) when the key exists and ("", false, nil) when
// it does not; backend failures come back as errors for the caller to log,
// never as panics.
type Adapter interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
