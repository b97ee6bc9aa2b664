package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_Finished(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() { defer wg.Done() }()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_DetectsBlocked(t *testing.T) {
	checker := NewGoroutineChecker(t)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		close(started)
		<-release
	}()
	<-started

	assert.GreaterOrEqual(t, checker.Leaked(), 1)

	close(release)
	checker.Check(0)
}
