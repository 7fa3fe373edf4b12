package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.values[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	val, ok := m.values[key]
	if !ok {
		return ""
	}
	str, _ := val.(string)
	return str
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/pillziy/config.toml" }

func setupConfigTest(store *mockConfigStore) func() {
	oldStore := configStore
	configStore = store
	return func() {
		configStore = oldStore
	}
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigShowCmd_ListsKnownKeys(t *testing.T) {
	cleanup := setupConfigTest(&mockConfigStore{
		values: map[string]any{"intake.language": "deu"},
	})
	defer cleanup()

	out, err := executeCommand("config", "show")

	assert.NoError(t, err)
	assert.Contains(t, out, "intake.language: deu")
	assert.Contains(t, out, "storage.backend: (default)")
}

func TestConfigGetCmd_PrintsValue(t *testing.T) {
	cleanup := setupConfigTest(&mockConfigStore{
		values: map[string]any{"storage.backend": "sqlite"},
	})
	defer cleanup()

	out, err := executeCommand("config", "get", "storage.backend")

	assert.NoError(t, err)
	assert.Contains(t, out, "sqlite")
}

func TestConfigGetCmd_UnsetKey(t *testing.T) {
	cleanup := setupConfigTest(&mockConfigStore{})
	defer cleanup()

	out, err := executeCommand("config", "get", "storage.backend")

	assert.NoError(t, err)
	assert.Contains(t, out, "storage.backend is not set")
}

func TestConfigSetCmd_PersistsValue(t *testing.T) {
	store := &mockConfigStore{}
	cleanup := setupConfigTest(store)
	defer cleanup()

	out, err := executeCommand("config", "set", "intake.language", "spa")

	assert.NoError(t, err)
	assert.Contains(t, out, "Set intake.language = spa")
	assert.Equal(t, "spa", store.GetString("intake.language"))
}

func TestConfigSetCmd_RejectsUnknownKey(t *testing.T) {
	cleanup := setupConfigTest(&mockConfigStore{})
	defer cleanup()

	_, err := executeCommand("config", "set", "nonsense.key", "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestConfigPathCmd_PrintsLocation(t *testing.T) {
	cleanup := setupConfigTest(&mockConfigStore{})
	defer cleanup()

	out, err := executeCommand("config", "path")

	assert.NoError(t, err)
	assert.Contains(t, out, "/tmp/pillziy/config.toml")
}

func TestConfigCmd_StoreNotConfigured(t *testing.T) {
	oldStore := configStore
	configStore = nil
	defer func() { configStore = oldStore }()

	_, err := executeCommand("config", "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config store not configured")
}
