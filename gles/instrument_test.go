package gles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorName(t *testing.T) {
	tests := []struct {
		code Enum
		want string
	}{
		{NO_ERROR, "NO_ERROR"},
		{INVALID_ENUM, "INVALID_ENUM"},
		{INVALID_VALUE, "INVALID_VALUE"},
		{INVALID_OPERATION, "INVALID_OPERATION"},
		{OUT_OF_MEMORY, "OUT_OF_MEMORY"},
		{INVALID_FRAMEBUFFER_OPERATION, "INVALID_FRAMEBUFFER_OPERATION"},
		{0x1234, "0x1234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorName(tt.code))
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs(nil))
	assert.Equal(t, "1, 0.5, true", formatArgs([]interface{}{1, 0.5, true}))
}

func TestRecentCallsEmptyWithoutTrace(t *testing.T) {
	if traceEnabled {
		t.Skip("trace build")
	}
	assert.Empty(t, RecentCalls())
}
