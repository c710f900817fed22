package shutdown

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fushigi/internal/logger"
)

func TestShutdownRunsStepsInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var mu sync.Mutex
	var order []string
	record := func(name string) func() error {
		return func() error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}

	m.Register("settings", record("settings"))
	m.Register("layout", record("layout"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"layout", "settings"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
	assert.Error(t, m.Context().Err())
}

func TestShutdownContinuesAfterFailingStep(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	ran := false
	m.Register("first", func() error { ran = true; return nil })
	m.Register("broken", func() error { return errors.New("boom") })

	m.Shutdown()
	assert.True(t, ran)
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.SetStepTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register("after", func() error { ran = true; return nil })
	m.Register("stuck", func() error { <-release; return nil })

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}
