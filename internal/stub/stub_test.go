package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	version := "dev"

	t.Run("replaced", func(t *testing.T) {
		Value(t, &version, "1.2.3")
		assert.Equal(t, "1.2.3", version)
	})

	assert.Equal(t, "dev", version, "restored after test")
}
