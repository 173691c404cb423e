package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModeDefaultsToNone(t *testing.T) {
	sm := NewStateManager()
	assert.Equal(t, ModeNone, sm.GetMode(111))
}

func TestSetAndClearMode(t *testing.T) {
	sm := NewStateManager()

	sm.SetMode(111, ModeChat)
	assert.Equal(t, ModeChat, sm.GetMode(111))

	sm.SetMode(111, ModeImage)
	assert.Equal(t, ModeImage, sm.GetMode(111))

	sm.ClearMode(111)
	assert.Equal(t, ModeNone, sm.GetMode(111))
}

func TestModesAreIndependentPerUser(t *testing.T) {
	sm := NewStateManager()

	sm.SetMode(111, ModeChat)
	sm.SetMode(222, ModeGrantVIP)

	assert.Equal(t, ModeChat, sm.GetMode(111))
	assert.Equal(t, ModeGrantVIP, sm.GetMode(222))
	assert.Equal(t, ModeNone, sm.GetMode(333))
}

func TestStateManagerConcurrentAccess(t *testing.T) {
	sm := NewStateManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.SetMode(id, ModeChat)
			sm.GetMode(id)
			sm.ClearMode(id)
		}(int64(i))
	}
	wg.Wait()
}

func TestNumericPattern(t *testing.T) {
	assert.True(t, numericPattern.MatchString("111"))
	assert.True(t, numericPattern.MatchString("0"))
	assert.False(t, numericPattern.MatchString("hello"))
	assert.False(t, numericPattern.MatchString("12a"))
	assert.False(t, numericPattern.MatchString("-12"))
	assert.False(t, numericPattern.MatchString("12 34"))
	assert.False(t, numericPattern.MatchString(""))
}
