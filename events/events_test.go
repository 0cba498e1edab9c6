package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFailure(t *testing.T) {
	failures := []Kind{TestFailed, SuiteAborted, RunAborted}
	for _, kind := range failures {
		assert.True(t, Event{Kind: kind}.IsFailure(), "kind %s", kind)
	}

	for _, kind := range Kinds {
		switch kind {
		case TestFailed, SuiteAborted, RunAborted:
			continue
		}
		assert.False(t, Event{Kind: kind}.IsFailure(), "kind %s", kind)
	}
}

func TestKindsAreUnique(t *testing.T) {
	seen := make(map[Kind]struct{}, len(Kinds))
	for _, kind := range Kinds {
		_, dup := seen[kind]
		assert.False(t, dup, "duplicate kind %s", kind)
		seen[kind] = struct{}{}
	}
	assert.Len(t, seen, 13)
}
