package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetBody(t *testing.T) {
	body := passwordResetBody("test", "test-reset-token", "https://roleplay.test/reset")

	assert.Contains(t, body, "test")
	assert.Contains(t, body, "https://roleplay.test/reset?token=test-reset-token")
}
