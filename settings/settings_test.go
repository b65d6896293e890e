package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestDefaultsValid(t *testing.T) {
	s, err := load("", "", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Nil(t, s.Seed)
}

func TestLoad_Layering(t *testing.T) {
	file := write(t, "rgodd.yaml", "min_states: 3\nmax_states: 30\nformat: json\nseed: 9\n")
	dotenv := write(t, ".env", "RGODD_MAX_STATES=20\nRGODD_LOG_LEVEL=debug\n")

	s, err := load(file, dotenv, env(map[string]string{
		"RGODD_MAX_STATES": "12",
		"RGODD_DENSITY":    "2.5",
		"RGODD_COMPRESS":   "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, s.MinStates)
	assert.Equal(t, 12, s.MaxStates, "process env beats .env and file")
	assert.Equal(t, "debug", s.LogLevel, ".env beats defaults")
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, 2.5, s.Density)
	assert.True(t, s.Compress)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(9), *s.Seed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"bad int", "", map[string]string{"RGODD_MIN_STATES": "many"}},
		{"bad float", "", map[string]string{"RGODD_DENSITY": "x"}},
		{"bad bool", "", map[string]string{"RGODD_LOG_DEV": "maybe"}},
		{"bad seed", "", map[string]string{"RGODD_SEED": "1.5"}},
		{"max below min", "", map[string]string{"RGODD_MIN_STATES": "9", "RGODD_MAX_STATES": "4"}},
		{"one class", "", map[string]string{"RGODD_FAULT_CLASSES": "1"}},
		{"bad format", "", map[string]string{"RGODD_FORMAT": "xml"}},
		{"zero density", "", map[string]string{"RGODD_DENSITY": "0"}},
		{"unknown yaml key", "colour: red\n", nil},
		{"broken yaml", "min_states: [\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := ""
			if tc.file != "" {
				file = write(t, "s.yaml", tc.file)
			}
			_, err := load(file, "", env(tc.env))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}

	_, err := load(filepath.Join(t.TempDir(), "absent.yaml"), "", env(nil))
	assert.ErrorIs(t, err, ErrInvalidSettings)
	_, err = load("", filepath.Join(t.TempDir(), "absent.env"), env(nil))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("RGODD_OBSERVABLE", "6")
	s, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Observable)
}
