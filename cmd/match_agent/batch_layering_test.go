package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTopN_ConfigValueAppliesWhenFlagUntouched(t *testing.T) {
	assert.Equal(t, 5, resolveTopN(false, 10, 5))
}

func TestResolveTopN_FlagDefaultWithoutConfig(t *testing.T) {
	assert.Equal(t, 10, resolveTopN(false, 10, 0))
}

func TestResolveTopN_ExplicitFlagBeatsConfig(t *testing.T) {
	assert.Equal(t, 3, resolveTopN(true, 3, 5))
}

func TestResolveTopN_ExplicitZeroMeansAllResults(t *testing.T) {
	assert.Equal(t, 0, resolveTopN(true, 0, 5))
}
