package bot

import (
	"sync"
)

// Mode decides how the next free-text message from a user is interpreted.
type Mode int

const (
	ModeNone Mode = iota
	ModeChat
	ModeImage
	ModeGrantVIP
	ModeRevokeVIP
)

// StateManager holds the per-user session mode. The state is process-local
// and intentionally lost on restart.
type StateManager struct {
	modes map[int64]Mode
	mutex sync.RWMutex
}

func NewStateManager() *StateManager {
	return &StateManager{
		modes: make(map[int64]Mode),
	}
}

func (sm *StateManager) SetMode(userID int64, mode Mode) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.modes[userID] = mode
}

// GetMode returns ModeNone for users without an active mode.
func (sm *StateManager) GetMode(userID int64) Mode {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.modes[userID]
}

func (sm *StateManager) ClearMode(userID int64) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	delete(sm.modes, userID)
}
