package services

import (
	"testing"

	"main/model"

	"github.com/stretchr/testify/assert"
)

func TestGuardCanRead(t *testing.T) {
	note := &model.Note{
		ID:         "note-1",
		Owner:      "alice",
		SharedWith: []string{"bob"},
	}

	var guard Guard

	assert.True(t, guard.CanRead("alice", note), "owner can read")
	assert.True(t, guard.CanRead("bob", note), "share-list member can read")
	assert.False(t, guard.CanRead("carol", note), "stranger cannot read")
	assert.False(t, guard.CanRead("alice", nil))
}

func TestGuardCanWrite(t *testing.T) {
	note := &model.Note{
		ID:         "note-1",
		Owner:      "alice",
		SharedWith: []string{"bob"},
	}

	var guard Guard

	assert.True(t, guard.CanWrite("alice", note), "owner can write")
	assert.False(t, guard.CanWrite("bob", note), "sharing grants read only")
	assert.False(t, guard.CanWrite("carol", note))
	assert.False(t, guard.CanWrite("alice", nil))
}
