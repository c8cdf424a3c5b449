package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Basics(t *testing.T) {
	c := NewCollection[string]()

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())

	c.Put("a", "alpha")
	c.Put("b", "beta")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)
	assert.Equal(t, 2, c.Len())

	c.Put("a", "alpha2")
	v, _ = c.Get("a")
	assert.Equal(t, "alpha2", v)
	assert.Equal(t, 2, c.Len(), "overwrite does not grow the collection")

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())
}

func TestCollection_ScanStopsEarly(t *testing.T) {
	c := NewCollection[int]()
	for i := 0; i < 10; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}

	visited := 0
	c.Scan(func(_ string, _ int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestCollection_ValueSemantics(t *testing.T) {
	type rec struct{ Name string }
	c := NewCollection[rec]()
	c.Put("a", rec{Name: "original"})

	got, _ := c.Get("a")
	got.Name = "mutated"

	stored, _ := c.Get("a")
	assert.Equal(t, "original", stored.Name, "readers get copies, not aliases")
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := NewCollection[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Put(fmt.Sprintf("k%d", n), n)
			c.Get(fmt.Sprintf("k%d", n/2))
			c.Scan(func(_ string, _ int) bool { return true })
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}

func TestSeed(t *testing.T) {
	db := Open()
	Seed(db)

	studio, ok := db.Studios.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Downtown Studios", studio.Name)
	require.NotEmpty(t, studio.Rooms)
	assert.Equal(t, "room-1-1", studio.Rooms[0].ID)

	assert.GreaterOrEqual(t, db.Studios.Len(), 5)
	assert.GreaterOrEqual(t, db.Users.Len(), 2)
	assert.GreaterOrEqual(t, db.BookingRequests.Len(), 2)
	assert.GreaterOrEqual(t, db.OpenCalls.Len(), 3)
}
