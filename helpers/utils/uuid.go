package utils

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID in and out of the service
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID
	RequestIDKey = "request_id"
)

// GenerateUUID returns a random (v4) UUID
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateShortID returns the first 8 hex characters of a fresh UUID
func GenerateShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// ValidRequestID accepts caller supplied IDs that are UUIDs
func ValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
