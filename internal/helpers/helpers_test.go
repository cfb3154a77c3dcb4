package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStage(t *testing.T) {
	for _, stage := range []string{StageProd, StageDev, StageLocal} {
		assert.True(t, IsValidStage(stage), stage)
	}
	assert.False(t, IsValidStage("staging"))
	assert.False(t, IsValidStage(""))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", FirstNonEmpty("a", "b"))
	assert.Equal(t, "b", FirstNonEmpty("", "b"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
	assert.Equal(t, "", FirstNonEmpty())
}
