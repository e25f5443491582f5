package game

import (
	"math/rand"
	"time"
)

// Rand is the slice of math/rand the engine depends on. Tests construct the
// engine with a fixed-seed source so template draws are reproducible.
type Rand interface {
	Intn(n int) int
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

const codeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// randCode builds the shareable part of a session code.
func (e *Engine) randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeLetters[e.rng.Intn(len(codeLetters))]
	}
	return string(b)
}
