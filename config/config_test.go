package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/coerce"
	_ "time/tzdata"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      *Settings
		hasError    bool
	}{
		{
			description: "arrays",
			text: `zone = "Asia/Tokyo"
date_patterns = ["yyyy/MM/dd", "yyyyMMdd"]
number_patterns = ["#,###"]`,
			expect: &Settings{Zone: "Asia/Tokyo", DatePatterns: []string{"yyyy/MM/dd", "yyyyMMdd"}, NumberPatterns: []string{"#,###"}},
		},
		{
			description: "separated string",
			text:        `date_patterns = "yyyy/MM/dd|yyyy.MM.dd"`,
			expect:      &Settings{DatePatterns: []string{"yyyy/MM/dd", "yyyy.MM.dd"}},
		},
		{
			description: "empty",
			text:        ``,
			expect:      &Settings{},
		},
		{
			description: "unknown key",
			text:        `patterns = ["yyyy"]`,
			hasError:    true,
		},
		{
			description: "invalid toml",
			text:        `zone = `,
			hasError:    true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := Parse(testCase.text)
			if testCase.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestFromMap(t *testing.T) {
	actual, err := FromMap(map[string]any{"zone": "UTC", "number_patterns": "#,###|#,####.#"})
	require.NoError(t, err)
	assert.Equal(t, &Settings{Zone: "UTC", NumberPatterns: []string{"#,###", "#,####.#"}}, actual)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coerce.toml")
	require.NoError(t, os.WriteFile(path, []byte("zone = \"Asia/Tokyo\"\ndate_patterns = [\"yyyy/MM/dd\"]\n"), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	registry, err := settings.Registry()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", registry.Location().String())
	date, err := coerce.Convert[time.Time](registry, "2018/02/21")
	require.NoError(t, err)
	assert.Equal(t, 9*60*60, offsetOf(date))

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSettings_Options(t *testing.T) {
	settings := &Settings{DatePatterns: []string{"yyyy/MM/dd"}, NumberPatterns: []string{"#,###"}}
	registry, err := settings.Registry()
	require.NoError(t, err)
	text, err := coerce.Convert[string](registry, civil.Date{Year: 2018, Month: 2, Day: 21})
	require.NoError(t, err)
	assert.Equal(t, "2018/02/21", text)
	n, err := coerce.Convert[int](registry, "1,000")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	_, err = (&Settings{Zone: "Mars/Base"}).Options()
	assert.Error(t, err)
	_, err = (&Settings{NumberPatterns: []string{"#%"}}).Registry()
	assert.Error(t, err)
}

func TestSettings_TOML(t *testing.T) {
	settings := &Settings{Zone: "UTC", DatePatterns: []string{"yyyy/MM/dd"}}
	text, err := settings.TOML()
	require.NoError(t, err)
	parsed, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, settings, parsed)
}

func offsetOf(ts time.Time) int {
	_, offset := ts.Zone()
	return offset
}
