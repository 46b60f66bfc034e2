package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("user-1"), lm.GetLock("user-1"))
	assert.NotSame(t, lm.GetLock("user-1"), lm.GetLock("user-2"))
}

func TestLockManager_SerialisesPerKey(t *testing.T) {
	lm := NewLockManager()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("user-1")
			defer unlock()
			// Non-atomic read-modify-write; only safe under the lock.
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}
