package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	resp := NewHealthService(now).Check(context.Background())

	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "Email test server is running", resp.Message)
	assert.Equal(t, "2024-01-02T03:04:05.006Z", resp.Timestamp)
	assert.Equal(t, "GET /test-email", resp.Endpoints.TestEmail)
	assert.Equal(t, "GET /health", resp.Endpoints.Health)
}

func TestCheck_DefaultClock(t *testing.T) {
	resp := NewHealthService(nil).Check(context.Background())
	_, err := time.Parse("2006-01-02T15:04:05.000Z", resp.Timestamp)
	assert.NoError(t, err)
}
