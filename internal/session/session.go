// Package session names one run of the TUI so its log lines can be grouped.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const timestampLayout = "20060102-150405"

// NewID returns "<yyyymmdd-hhmmss>-<6 hex chars>" for the current time.
func NewID() string {
	return newID(time.Now())
}

func newID(now time.Time) string {
	timestamp := now.Format(timestampLayout)
	randomBytes := make([]byte, 3)
	if _, err := rand.Read(randomBytes); err != nil {
		return timestamp + "-" + now.Format("000000")
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
