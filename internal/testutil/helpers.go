package testutil

import (
	"bytes"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/common"
)

// NewTestSource creates a deterministic random source for tests
func NewTestSource(seed int64) common.RandomSource {
	return common.NewSeededSource(seed)
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// BufferLogger returns a JSON logger writing into the returned buffer
func BufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf), &buf
}
