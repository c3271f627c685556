// Package queue provides a FIFO queue, used by the breadth-first tree
// traversal.
package queue

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue is returned by First and Dequeue on an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrInvalidCapacity is returned when constructing a queue with a
	// non-positive initial capacity.
	ErrInvalidCapacity = errors.New("initial capacity must be positive")
)

// Queue is a first-in-first-out collection.
type Queue[T any] interface {
	Size() int
	IsEmpty() bool
	Enqueue(elements ...T)
	First() (T, error)
	Dequeue() error
	Clear()
}

const defaultCapacity = 16

// ArrayQueue is a Queue backed by a growable ring buffer.
//
// Invariant: the queue's elements live at indices first, first+1, ...
// (mod len(elements)) of the buffer; size is the number of live elements.
type ArrayQueue[T any] struct {
	elements []T
	first    int
	size     int
}

// New creates an ArrayQueue with the given elements, front first.
func New[T any](elements ...T) *ArrayQueue[T] {
	queue := &ArrayQueue[T]{elements: make([]T, defaultCapacity)}
	queue.Enqueue(elements...)
	return queue
}

// WithCapacity creates an empty ArrayQueue with storage preallocated for
// capacity elements. Returns ErrInvalidCapacity if capacity is not positive.
func WithCapacity[T any](capacity int) (*ArrayQueue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &ArrayQueue[T]{elements: make([]T, capacity)}, nil
}

func (q *ArrayQueue[T]) Size() int {
	return q.size
}

func (q *ArrayQueue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *ArrayQueue[T]) Enqueue(elements ...T) {
	for _, element := range elements {
		q.grow()
		q.elements[(q.first+q.size)%len(q.elements)] = element
		q.size++
	}
}

// First returns the element at the front of the queue without removing it.
func (q *ArrayQueue[T]) First() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, fmt.Errorf("first: %w", ErrEmptyQueue)
	}
	return q.elements[q.first], nil
}

// Dequeue removes the element at the front of the queue.
func (q *ArrayQueue[T]) Dequeue() error {
	if q.size == 0 {
		return fmt.Errorf("dequeue: %w", ErrEmptyQueue)
	}
	var zero T
	q.elements[q.first] = zero
	q.first = (q.first + 1) % len(q.elements)
	q.size--
	return nil
}

func (q *ArrayQueue[T]) Clear() {
	var zero T
	for q.size > 0 {
		q.elements[q.first] = zero
		q.first = (q.first + 1) % len(q.elements)
		q.size--
	}
	q.first = 0
}

// grow doubles the buffer when it is full, unwrapping the ring so the queue
// starts at index 0 of the new buffer.
func (q *ArrayQueue[T]) grow() {
	if q.size < len(q.elements) {
		return
	}
	grown := make([]T, 2*len(q.elements))
	for i := 0; i < q.size; i++ {
		grown[i] = q.elements[(q.first+i)%len(q.elements)]
	}
	q.elements = grown
	q.first = 0
}
