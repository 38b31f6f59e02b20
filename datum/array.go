package datum

import (
	"iter"

	"github.com/wippyai/avro-datum/errors"
)

const defaultArrayCap = 32

// Array holds an ordered sequence of owned children.
type Array struct {
	header
	items []Datum
}

// NewArray creates an empty array.
func (f *Factory) NewArray() *Array {
	return &Array{header: newHeader(f, KindArray), items: make([]Datum, 0, defaultArrayCap)}
}

func NewArray() *Array { return DefaultFactory().NewArray() }

func (a *Array) Len() int { return len(a.items) }

// Cap returns the capacity of the backing buffer.
func (a *Array) Cap() int { return cap(a.items) }

// Get returns the element at i without taking a reference.
func (a *Array) Get(i int) (Datum, error) {
	if i < 0 || i >= len(a.items) {
		return nil, errors.OutOfBounds(errors.PhaseAccess, nil, i, len(a.items))
	}
	return a.items[i], nil
}

// Append adds child at the end, taking a reference on it.
func (a *Array) Append(child Datum) error {
	if a.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "array")
	}
	if child == nil {
		return errors.NilPointer(errors.PhaseMutate, nil, "array element")
	}
	a.items = append(a.items, Incref(child))
	return nil
}

// All iterates elements in order. Elements are borrowed.
func (a *Array) All() iter.Seq2[int, Datum] {
	return func(yield func(int, Datum) bool) {
		for i, d := range a.items {
			if !yield(i, d) {
				return
			}
		}
	}
}

func (a *Array) destroy() {
	for i, d := range a.items {
		a.items[i] = nil
		Decref(d)
	}
	a.items = nil
}
