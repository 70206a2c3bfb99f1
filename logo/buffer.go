//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import "strings"

// stringer is satisfied by anything that can render itself for the
// Buffer's cursor representation.
type stringer interface {
	String() string
}

// Buffer is a position-tracked cursor over a sequence of elements. It is
// the single shared device used both for character-level scanning (the
// tokenizer) and token-level walking (the evaluator).
type Buffer[T stringer] struct {
	contents []T
	index    int
}

// NewBuffer creates a Buffer positioned at the start of elements.
func NewBuffer[T stringer](elements []T) *Buffer[T] {
	return &Buffer[T]{contents: elements, index: 0}
}

// maxIndex returns the index of the last element, or -1 if empty.
func (b *Buffer[T]) maxIndex() int {
	return len(b.contents) - 1
}

// Current returns the element at the cursor, and true if one exists.
func (b *Buffer[T]) Current() (T, bool) {
	var zero T
	if b.maxIndex() < b.index {
		return zero, false
	}
	return b.contents[b.index], true
}

// Previous returns the element just behind the cursor, and true if one
// exists. It is nil both before the first Pop and after the end of
// elements.
func (b *Buffer[T]) Previous() (T, bool) {
	var zero T
	if b.index == 0 || b.maxIndex() < b.index-1 {
		return zero, false
	}
	return b.contents[b.index-1], true
}

// Pop removes and returns the element at the cursor, advancing it. It
// panics if there is nothing left to pop; callers must check Current
// first, exactly as the evaluator does before every Pop.
func (b *Buffer[T]) Pop() T {
	if b.index > b.maxIndex() {
		panic("logo: nothing left to pop")
	}
	b.index++
	v, _ := b.Previous()
	return v
}

// Exhausted reports whether the cursor has passed the last element.
func (b *Buffer[T]) Exhausted() bool {
	_, ok := b.Current()
	return !ok
}

// String renders the buffer as a list, marking the cursor position with
// ">>", matching the Python original's Buffer.__str__ used throughout
// error messages to let a user localize a failure within a line.
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < b.index; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.contents[i].String())
	}
	sb.WriteString(" >> ")
	for i := b.index; i <= b.maxIndex(); i++ {
		if i > b.index {
			sb.WriteString(", ")
		}
		sb.WriteString(b.contents[i].String())
	}
	sb.WriteString(" ]")
	return sb.String()
}
