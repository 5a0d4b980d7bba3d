package smf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeatInBar(t *testing.T) {
	var n uint16 = 480

	assert.Equal(t, 0, beatInBar(0, n))
	assert.Equal(t, 0, beatInBar(90, n))
	assert.Equal(t, 2, beatInBar(960, n))
	assert.Equal(t, 2, beatInBar(1439, n))
	assert.Equal(t, 3, beatInBar(1919, n))
	assert.Equal(t, 0, beatInBar(1920, n))
	assert.Equal(t, 0, beatInBar(960, 0))
}
