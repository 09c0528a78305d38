package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPublicURL(t *testing.T) {
	c := &s3Client{bucket: "voice", host: "https://storage.example"}

	assert.Equal(t,
		"https://storage.example/voice/uploads/2025-08-14/id-my%20clip.webm",
		c.buildPublicURL("uploads/2025-08-14/id-my clip.webm"))
	assert.Equal(t,
		"https://storage.example/voice/etc/passwd",
		c.buildPublicURL("../etc/passwd"))
}
