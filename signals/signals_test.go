//go:build !wasm

package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSignal_SetNotifiesWithOldAndNew verifies that subscribers see both values.
func TestSignal_SetNotifiesWithOldAndNew(t *testing.T) {
	s := NewSignal("a")
	var got [][2]string
	s.Subscribe(func(prev, next string) { got = append(got, [2]string{prev, next}) })

	s.Set("b")
	s.Set("c")

	assert.Equal(t, "c", s.Get())
	assert.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}}, got)
}

// TestSignal_UnsubscribeKeepsOthers verifies that removing one subscriber keeps the rest.
func TestSignal_UnsubscribeKeepsOthers(t *testing.T) {
	s := NewSignal(0)
	var first, second, third int
	u1 := s.Subscribe(func(_, v int) { first = v })
	u2 := s.Subscribe(func(_, v int) { second = v })
	s.Subscribe(func(_, v int) { third = v })

	// Removing an earlier subscriber must not detach a later one.
	u1()
	u2()
	u2()
	s.Set(5)

	assert.Equal(t, 0, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, 5, third)
	assert.Equal(t, 1, s.Len())
}

// TestSignal_CallbackMaySet verifies that a callback can Set without deadlocking.
func TestSignal_CallbackMaySet(t *testing.T) {
	s := NewSignal(0)
	s.Subscribe(func(_, v int) {
		if v < 3 {
			s.Set(v + 1)
		}
	})

	s.Set(1)

	assert.Equal(t, 3, s.Get())
}
