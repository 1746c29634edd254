package testutil

import "github.com/arthur-debert/fmlabel/pkg/types"

// MockSettings is an in-memory types.SettingsStore
type MockSettings struct {
	Config  types.Config
	SaveErr error
	Saves   int
}

// NewMockSettings wraps cfg
func NewMockSettings(cfg types.Config) *MockSettings {
	return &MockSettings{Config: cfg}
}

// Current implements types.SettingsStore.
func (s *MockSettings) Current() types.Config { return s.Config.Clone() }

// Save implements types.SettingsStore.
func (s *MockSettings) Save() error {
	s.Saves++
	return s.SaveErr
}
