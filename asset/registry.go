// Package asset loads optional resources in the background
// Callers never block on a load; a missing asset means a fallback visual
package asset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/rs/zerolog"
)

// State is the load state of one named asset
type State int

const (
	StateUnknown State = iota // Never requested
	StatePending
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DecodeFunc turns an opened file into a loaded asset
type DecodeFunc[T any] func(r io.Reader) (T, error)

type entry[T any] struct {
	state State
	value T
	path  string // Candidate that loaded
	err   error
}

// Registry loads named assets from fsys asynchronously
// Each name is tried once across its candidate paths; failures are not retried
type Registry[T any] struct {
	fsys   fs.FS
	decode DecodeFunc[T]
	log    zerolog.Logger

	mu      sync.RWMutex
	entries map[string]*entry[T]
	wg      sync.WaitGroup
}

// NewRegistry creates a registry reading from fsys
func NewRegistry[T any](fsys fs.FS, decode func(io.Reader) (T, error), log zerolog.Logger) *Registry[T] {
	return &Registry[T]{
		fsys:    fsys,
		decode:  decode,
		log:     log,
		entries: make(map[string]*entry[T]),
	}
}

// Load requests name, trying candidates in order on a background goroutine
// Repeated calls return the current state without starting another load
func (r *Registry[T]) Load(name string, candidates ...string) State {
	r.mu.Lock()
	if e, ok := r.entries[name]; ok {
		st := e.state
		r.mu.Unlock()
		return st
	}
	r.entries[name] = &entry[T]{state: StatePending}
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.resolve(name, candidates)
	}()
	return StatePending
}

func (r *Registry[T]) resolve(name string, candidates []string) {
	var errs []error
	for _, path := range candidates {
		v, err := r.open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		r.mu.Lock()
		r.entries[name] = &entry[T]{state: StateReady, value: v, path: path}
		r.mu.Unlock()
		r.log.Debug().Str("asset", name).Str("path", path).Msg("asset loaded")
		return
	}

	err := errors.Join(errs...)
	if err == nil {
		err = fmt.Errorf("asset %s: no candidate paths", name)
	}
	r.mu.Lock()
	r.entries[name] = &entry[T]{state: StateFailed, err: err}
	r.mu.Unlock()
	r.log.Debug().Str("asset", name).Err(err).Msg("asset unavailable, using fallback")
}

func (r *Registry[T]) open(path string) (T, error) {
	var zero T
	f, err := r.fsys.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := r.decode(f)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

// Get returns the asset when ready
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok && e.state == StateReady {
		return e.value, true
	}
	var zero T
	return zero, false
}

// State returns the load state of name
func (r *Registry[T]) State(name string) State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok {
		return e.state
	}
	return StateUnknown
}

// Path returns the candidate that loaded name
func (r *Registry[T]) Path(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok {
		return e.path
	}
	return ""
}

// Err returns the joined candidate errors of a failed load
func (r *Registry[T]) Err(name string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok {
		return e.err
	}
	return nil
}

// Wait blocks until every requested load has settled
func (r *Registry[T]) Wait() {
	r.wg.Wait()
}
