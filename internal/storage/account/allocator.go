package account

import "slices"

// IDAllocator hands out account ids, preferring the smallest freed id over a
// fresh one. It is not safe for concurrent use; Store guards it.
type IDAllocator struct {
	nextID int
	freed  []int // sorted ascending, no duplicates
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{nextID: FirstID}
}

// Allocate returns the smallest freed id, or the next fresh id when none are free.
func (a *IDAllocator) Allocate() int {
	if len(a.freed) > 0 {
		id := a.freed[0]
		a.freed = a.freed[1:]
		return id
	}

	id := a.nextID
	a.nextID++
	return id
}

// Release makes id available to a later Allocate.
func (a *IDAllocator) Release(id int) {
	pos, found := slices.BinarySearch(a.freed, id)
	if found {
		return
	}
	a.freed = slices.Insert(a.freed, pos, id)
}

// Reserve marks id as in use: it leaves the freed set and the fresh-id
// counter moves past it.
func (a *IDAllocator) Reserve(id int) {
	if pos, found := slices.BinarySearch(a.freed, id); found {
		a.freed = slices.Delete(a.freed, pos, pos+1)
	}
	a.Seed(id)
}

// Seed moves the fresh-id counter past maxID. The counter never drops below
// FirstID and never moves backwards.
func (a *IDAllocator) Seed(maxID int) {
	next := max(maxID, FirstID-1) + 1
	if next > a.nextID {
		a.nextID = next
	}
}

func (a *IDAllocator) NextID() int {
	return a.nextID
}
