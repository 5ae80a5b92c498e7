package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain widget", escapeLike("plain widget"))
	assert.Equal(t, `50\% off`, escapeLike(`50% off`))
	assert.Equal(t, `snake\_case`, escapeLike(`snake_case`))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, `\%\_\\`, escapeLike(`%_\`))
}
