// ABOUTME: Tests for config loading, environment overrides and validation
// ABOUTME: Uses a temporary XDG_CONFIG_HOME so the user's config is never touched

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/calendr/internal/period"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"CALENDR_FIRST_WEEKDAY", "CALENDR_DATE_LAYOUT", "CALENDR_STYLE", "CALENDR_TIMEZONE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestGetConfigPath(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "calendr", "config.json"), GetConfigPath())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, cfg.GetFirstWeekday())
	assert.Equal(t, DefaultDateLayout, cfg.GetDateLayout())
	assert.Equal(t, DefaultStyle, cfg.GetStyle())
	assert.Equal(t, time.Local, cfg.GetLocation())

	_, err = os.Stat(GetConfigPath())
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{FirstWeekday: "sunday", DateLayout: "02/01/2006", Style: "light", Timezone: "UTC"}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, time.Sunday, loaded.GetFirstWeekday())
	assert.Equal(t, time.UTC, loaded.GetLocation())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, (&Config{FirstWeekday: "sunday", Style: "light"}).Save())

	t.Setenv("CALENDR_FIRST_WEEKDAY", "3")
	t.Setenv("CALENDR_DATE_LAYOUT", "2006")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, cfg.GetFirstWeekday())
	assert.Equal(t, "2006", cfg.GetDateLayout())
	assert.Equal(t, "light", cfg.GetStyle(), "unset variables leave the file value alone")
}

func TestLoadFileIgnoresEnvironment(t *testing.T) {
	isolate(t)
	require.NoError(t, (&Config{FirstWeekday: "sunday"}).Save())
	t.Setenv("CALENDR_TIMEZONE", "Asia/Tokyo")

	cfg, err := LoadFile()
	require.NoError(t, err)
	cfg.DateLayout = "2006"
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(GetConfigPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "timezone")

	require.NoError(t, os.Unsetenv("CALENDR_TIMEZONE"))
	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{FirstWeekday: "sunday", DateLayout: "2006"}, loaded)
}

func TestWeekdayValidation(t *testing.T) {
	var v = validate
	require.NotPanics(t, func() { v = newValidator() })
	assert.NoError(t, v.Var("sun", "weekday"))
	assert.NoError(t, v.Var("6", "weekday"))
	assert.Error(t, v.Var("funday", "weekday"))
	assert.Error(t, v.Var("7", "weekday"))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"weekday number", "CALENDR_FIRST_WEEKDAY", "7"},
		{"weekday name", "CALENDR_FIRST_WEEKDAY", "someday"},
		{"style", "CALENDR_STYLE", "neon"},
		{"timezone", "CALENDR_TIMEZONE", "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	isolate(t)
	path := GetConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), DefaultDirPerms))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), DefaultFilePerms))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	isolate(t)
	err := (&Config{FirstWeekday: "funday"}).Save()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"0", time.Sunday, true},
		{"6", time.Saturday, true},
		{"monday", time.Monday, true},
		{"Thu", time.Thursday, true},
		{" SATURDAY ", time.Saturday, true},
		{"7", 0, false},
		{"-1", 0, false},
		{"mo", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if !tt.ok {
			assert.ErrorIs(t, err, period.ErrInvalidWeekday, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFactoryHonoursFirstWeekday(t *testing.T) {
	cfg := &Config{FirstWeekday: "sun"}
	f, err := cfg.Factory()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, f.FirstWeekday())

	f, err = (&Config{}).Factory()
	require.NoError(t, err)
	assert.Equal(t, period.DefaultFirstWeekday, f.FirstWeekday())
}
