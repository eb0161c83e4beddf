/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collector provides mutable reductions ("collectors") made of four pluggable stages:
// a supplier creating an empty accumulator, an accumulator folding one element in,
// a combiner merging two partial accumulators and a finisher producing the result.
//
// Collectors can be run serially, in which case the combiner is never used, or in parallel
// where the input is split into partitions, each folded into its own accumulator before
// the partial accumulators get merged pairwise using the combiner.
package collector

import (
	"reflect"

	"github.com/foldkit/foldkit/commonerrors"
)

// Supplier creates a new, empty and independent accumulator.
type Supplier[A any] func() A

// Accumulator folds an element into an accumulator. It may either mutate the accumulator and return it or return a replacement.
type Accumulator[A, E any] func(A, E) A

// Combiner merges two partial accumulators. The first argument always holds the elements preceding those of the second one.
// It must be associative for parallel collection to be deterministic.
type Combiner[A any] func(A, A) A

// Finisher transforms the accumulator into the result.
type Finisher[A, R any] func(A) R

// Characteristics describe properties of a collector.
type Characteristics uint8

const (
	// IdentityFinish states that the accumulator is the result: the finisher can be omitted.
	IdentityFinish Characteristics = 1 << iota
	// Unordered states that the result does not depend on the encounter order of the elements.
	Unordered
)

// Has returns whether c holds all the characteristics of other.
func (c Characteristics) Has(other Characteristics) bool {
	return c&other == other
}

// Collector bundles the four stages of a mutable reduction of elements E into a result R using accumulators A.
// Combiner may be nil if the collector is only ever used serially.
// Finisher may be nil if the collector has the IdentityFinish characteristic.
type Collector[E, A, R any] struct {
	Supplier        Supplier[A]
	Accumulator     Accumulator[A, E]
	Combiner        Combiner[A]
	Finisher        Finisher[A, R]
	Characteristics Characteristics
}

// New returns a collector from its stages.
func New[E, A, R any](supplier Supplier[A], accumulator Accumulator[A, E], combiner Combiner[A], finisher Finisher[A, R], characteristics ...Characteristics) *Collector[E, A, R] {
	c := &Collector[E, A, R]{
		Supplier:    supplier,
		Accumulator: accumulator,
		Combiner:    combiner,
		Finisher:    finisher,
	}
	for i := range characteristics {
		c.Characteristics |= characteristics[i]
	}
	return c
}

// NewIdentity returns a collector whose accumulator is also its result.
func NewIdentity[E, A any](supplier Supplier[A], accumulator Accumulator[A, E], combiner Combiner[A], characteristics ...Characteristics) *Collector[E, A, A] {
	return New[E, A, A](supplier, accumulator, combiner, nil, append(characteristics, IdentityFinish)...)
}

// IsParallelisable states whether the collector can be used for parallel collection.
func (c *Collector[E, A, R]) IsParallelisable() bool {
	return c != nil && c.Combiner != nil
}

// Validate checks that the collector defines every stage needed for the requested mode of execution.
func (c *Collector[E, A, R]) Validate(parallel bool) error {
	if c == nil {
		return commonerrors.UndefinedVariable("collector")
	}
	if c.Supplier == nil {
		return commonerrors.New(commonerrors.ErrMisconfigured, "collector has no supplier")
	}
	if c.Accumulator == nil {
		return commonerrors.New(commonerrors.ErrMisconfigured, "collector has no accumulator")
	}
	if parallel && c.Combiner == nil {
		return commonerrors.New(commonerrors.ErrMisconfigured, "collector has no combiner and cannot be used for parallel collection")
	}
	if c.Finisher == nil {
		if !c.Characteristics.Has(IdentityFinish) {
			return commonerrors.New(commonerrors.ErrMisconfigured, "collector has no finisher")
		}
		if !reflect.TypeFor[A]().AssignableTo(reflect.TypeFor[R]()) {
			return commonerrors.Newf(commonerrors.ErrMisconfigured, "collector accumulator type %v cannot be used as result type %v", reflect.TypeFor[A](), reflect.TypeFor[R]())
		}
	}
	return nil
}

func (c *Collector[E, A, R]) fold(accumulator A, element E) A {
	return c.Accumulator(accumulator, element)
}

func (c *Collector[E, A, R]) finish(accumulator A) (result R, err error) {
	if c.Finisher != nil {
		result = c.Finisher(accumulator)
		return
	}
	result, ok := any(accumulator).(R)
	if !ok && !isNil(accumulator) {
		err = commonerrors.Newf(commonerrors.ErrMisconfigured, "accumulator of type %T is not a valid result", accumulator)
	}
	return
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}
