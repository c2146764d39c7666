package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewWorkspaceID creates a random workspace identifier
func NewWorkspaceID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate workspace id: %w", err)
	}
	return "ws-" + hex.EncodeToString(b), nil
}
