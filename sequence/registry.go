// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sequence

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned when a variant is not found in the registry.
	ErrNotFound = errors.New("sequence variant not found")

	// ErrAlreadyRegistered is returned when attempting to register a duplicate.
	ErrAlreadyRegistered = errors.New("sequence variant already registered")

	// ErrNilFactory is returned when attempting to register a nil factory.
	ErrNilFactory = errors.New("factory must not be nil")
)

// Variant names for the built-in sequence implementations.
const (
	// VariantVector is the contiguous-array implementation.
	VariantVector = "vector"

	// VariantList is the doubly-linked-list implementation.
	VariantList = "list"
)

// Factory constructs a fresh, empty sequence instance.
//
// Each benchmark trial calls the factory once so that no state crosses
// trial boundaries.
type Factory func() IntSequence

// Registry maps variant names to sequence factories.
//
// Description:
//
//	The Registry lets harness code drive sequence implementations by name,
//	so the identical workload serves every variant. It mirrors the shape of
//	the component registries used elsewhere in the codebase.
//
// Thread Safety: Safe for concurrent use via read-write mutex.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
//
// Outputs:
//   - *Registry: The new registry. Never nil.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// DefaultRegistry returns a registry with the built-in variants registered.
//
// Description:
//
//	Registers the contiguous-array variant under VariantVector and the
//	doubly-linked-list variant under VariantList.
//
// Outputs:
//   - *Registry: Registry holding both built-in variants. Never nil.
//
// Example:
//
//	registry := sequence.DefaultRegistry()
//	seq, err := registry.New(sequence.VariantVector)
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(VariantVector, func() IntSequence { return NewArray() })
	r.MustRegister(VariantList, func() IntSequence { return NewList() })
	return r
}

// Register adds a factory to the registry under the given name.
//
// Inputs:
//   - name: Unique variant name. Must not be empty.
//   - factory: Constructor for the variant. Must not be nil.
//
// Outputs:
//   - error: nil on success, ErrNilFactory if factory is nil,
//     ErrAlreadyRegistered if name is already taken.
//
// Thread Safety: Safe for concurrent use.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister registers a factory and panics on error.
//
// Intended for static registration at startup where a failure is a
// programming error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(fmt.Sprintf("registering sequence variant %s: %v", name, err))
	}
}

// New constructs a fresh instance of the named variant.
//
// Outputs:
//   - IntSequence: A new, empty sequence.
//   - error: ErrNotFound if the name is not registered.
//
// Thread Safety: Safe for concurrent use.
func (r *Registry) New(name string) (IntSequence, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return factory(), nil
}

// List returns the registered variant names in sorted order.
//
// Thread Safety: Safe for concurrent use.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
