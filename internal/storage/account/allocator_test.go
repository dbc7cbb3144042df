package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAllocator_FreshIDs(t *testing.T) {
	a := NewIDAllocator()

	assert.Equal(t, 1001, a.Allocate())
	assert.Equal(t, 1002, a.Allocate())
	assert.Equal(t, 1003, a.NextID())
}

func TestIDAllocator_FreedSmallestFirst(t *testing.T) {
	a := NewIDAllocator()
	for i := 0; i < 5; i++ {
		a.Allocate()
	}

	a.Release(1004)
	a.Release(1002)
	a.Release(1004)

	assert.Equal(t, 1002, a.Allocate())
	assert.Equal(t, 1004, a.Allocate())
	assert.Equal(t, 1006, a.Allocate())
}

func TestIDAllocator_Seed(t *testing.T) {
	tests := []struct {
		name  string
		maxID int
		want  int
	}{
		{"empty file", 0, 1001},
		{"ids below floor", 500, 1001},
		{"floor exactly", 1000, 1001},
		{"above floor", 1500, 1501},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewIDAllocator()
			a.Seed(tt.maxID)
			assert.Equal(t, tt.want, a.NextID())
		})
	}
}

func TestIDAllocator_SeedNeverMovesBackwards(t *testing.T) {
	a := NewIDAllocator()
	a.Seed(2000)
	a.Seed(1200)

	assert.Equal(t, 2001, a.NextID())
}

func TestIDAllocator_ReserveRemovesFreedID(t *testing.T) {
	a := NewIDAllocator()
	a.Allocate()
	a.Allocate()
	a.Release(1001)

	a.Reserve(1001)

	assert.Equal(t, 1003, a.Allocate())
	assert.Equal(t, 1004, a.Allocate(), "1001 stays in use")
}
