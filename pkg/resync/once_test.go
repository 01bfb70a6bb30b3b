package resync_test

import (
	"testing"

	"github.com/julien-sobczak/the-moodwriter/pkg/resync"
	"github.com/stretchr/testify/assert"
)

func TestOnce(t *testing.T) {
	var once resync.Once
	count := 0
	inc := func() { count++ }

	once.Do(inc)
	once.Do(inc)
	assert.Equal(t, 1, count)

	once.Reset()
	once.Do(inc)
	once.Do(inc)
	assert.Equal(t, 2, count)
}
