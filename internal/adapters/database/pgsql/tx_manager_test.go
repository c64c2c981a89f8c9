package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationSetting(t *testing.T) {
	assert.Equal(t, "5000", durationSetting(5*time.Second))
	assert.Equal(t, "250", durationSetting(250*time.Millisecond))
}
