// Package uuidgen produces batches of random (version 4) UUIDs.
package uuidgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MaxCount bounds one batch.
const MaxCount = 50

// Counts are the batch sizes offered by the form.
var Counts = []int{1, 5, 10, 20, 50}

// ParseCount reads a batch size from a form value, defaulting to 1.
func ParseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 1
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// Generate returns n UUIDs read from reader, or crypto/rand when reader is nil.
func Generate(n int, reader io.Reader) ([]string, error) {
	if n < 1 || n > MaxCount {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxCount, n)
	}
	if reader == nil {
		reader = rand.Reader
	}
	out := make([]string, 0, n)
	for range n {
		id, err := uuid.NewRandomFromReader(reader)
		if err != nil {
			return nil, fmt.Errorf("generate uuid: %w", err)
		}
		out = append(out, id.String())
	}
	return out, nil
}

// Uppercase returns ids in uppercase.
func Uppercase(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strings.ToUpper(id)
	}
	return out
}
