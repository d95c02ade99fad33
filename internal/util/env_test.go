package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	_ = os.Setenv("UTIL_TEST_KEY", "")
	assert.Equal(t, "fallback", Getenv("UTIL_TEST_KEY", "fallback"))

	_ = os.Setenv("UTIL_TEST_KEY", "value")
	assert.Equal(t, "value", Getenv("UTIL_TEST_KEY", "fallback"))
	_ = os.Unsetenv("UTIL_TEST_KEY")
}
