// Package stack provides a LIFO stack backed by a growable slice.
package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned by Top and Pop on an empty stack.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrInvalidCapacity is returned when constructing a stack with a
	// non-positive initial capacity.
	ErrInvalidCapacity = errors.New("initial capacity must be positive")
)

// Stack is a last-in-first-out collection.
type Stack[T any] interface {
	Size() int
	IsEmpty() bool
	Push(elements ...T)
	Top() (T, error)
	Pop() error
	Clear()
}

// ArrayStack is a Stack backed by a contiguous slice, bottom to top.
type ArrayStack[T any] struct {
	elements []T
}

// New creates an ArrayStack with the given elements, pushed in order.
func New[T any](elements ...T) *ArrayStack[T] {
	stack := &ArrayStack[T]{}
	stack.Push(elements...)
	return stack
}

// WithCapacity creates an empty ArrayStack with storage preallocated for
// capacity elements. Returns ErrInvalidCapacity if capacity is not positive.
func WithCapacity[T any](capacity int) (*ArrayStack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &ArrayStack[T]{elements: make([]T, 0, capacity)}, nil
}

// Copy creates an ArrayStack with the same elements as that.
func Copy[T any](that *ArrayStack[T]) *ArrayStack[T] {
	copied := &ArrayStack[T]{elements: make([]T, len(that.elements))}
	copy(copied.elements, that.elements)
	return copied
}

func (s *ArrayStack[T]) Size() int {
	return len(s.elements)
}

func (s *ArrayStack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

func (s *ArrayStack[T]) Push(elements ...T) {
	s.elements = append(s.elements, elements...)
}

// Top returns the element at the top of the stack without removing it.
func (s *ArrayStack[T]) Top() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, fmt.Errorf("top: %w", ErrEmptyStack)
	}
	return s.elements[len(s.elements)-1], nil
}

// Pop removes the element at the top of the stack.
func (s *ArrayStack[T]) Pop() error {
	if len(s.elements) == 0 {
		return fmt.Errorf("pop: %w", ErrEmptyStack)
	}
	last := len(s.elements) - 1
	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return nil
}

func (s *ArrayStack[T]) Clear() {
	var zero T
	for i := range s.elements {
		s.elements[i] = zero
	}
	s.elements = s.elements[:0]
}

func (s *ArrayStack[T]) String() string {
	return fmt.Sprintf("ArrayStack%v", s.elements)
}
