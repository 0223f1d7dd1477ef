package domain

import (
	"time"

	"github.com/google/uuid"
)

// Problem is one decode input: a Morse sequence without separators and the
// dictionary its sentences are built from.
type Problem struct {
	Morse string
	Words []string
}

// WordList is a named dictionary persisted in the store.
type WordList struct {
	ID        uuid.UUID
	Name      string
	WordCount int
	CreatedAt time.Time
}

// DecodeRun records the outcome of one decode.
type DecodeRun struct {
	ID           uuid.UUID
	WordListID   *uuid.UUID
	Morse        string
	Mode         DecodeMode
	MessageCount int
	Duration     time.Duration
	CreatedAt    time.Time
}
