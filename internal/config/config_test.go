package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsTOML = `
outlook = [210, 190, 160]

[[station]]
name = "Anand Vihar"

  [[station.monitor]]
  pm25 = 110.0
  pm10 = 182.0
  wind_speed = 2.0
  temperature = 15.0
  humidity = 60.0

  [[station.monitor]]
  pm25 = 130.0
  pm10 = 200.0
  wind_speed = 1.5
  temperature = 14.0
  humidity = 66.0

[[station]]
name = "Dwarka"

  [[station.monitor]]
  pm25 = 80.0
  pm10 = 140.0
  wind_speed = 3.0
  temperature = 18.0
  humidity = 50.0
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStations(t *testing.T) {
	sf, err := LoadStations(writeFile(t, stationsTOML))
	require.NoError(t, err)

	assert.Equal(t, []int{210, 190, 160}, sf.Outlook)

	stations := sf.toStations()
	require.Len(t, stations, 2)
	assert.Equal(t, "Anand Vihar", stations[0].Name)
	require.Len(t, stations[0].Monitors, 2)
	assert.Equal(t, 1.5, stations[0].Monitors[1].WindSpeed)
	assert.Equal(t, 66.0, stations[0].Monitors[1].Humidity)
	assert.Equal(t, "Dwarka", stations[1].Name)
}

func TestLoadStationsRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"no stations": `outlook = [100]`,
		"no monitors": `
[[station]]
name = "Dwarka"
`,
		"duplicate": `
[[station]]
name = "Dwarka"
  [[station.monitor]]
  pm25 = 1.0

[[station]]
name = "Dwarka"
  [[station.monitor]]
  pm25 = 1.0
`,
		"unnamed": `
[[station]]
  [[station.monitor]]
  pm25 = 1.0
`,
		"syntax": `[[station`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadStations(writeFile(t, content))
			assert.Error(t, err)
		})
	}

	_, err := LoadStations(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "REFRESH_INTERVAL", "STORE_MAX_HISTORY", "STORE_MAX_AGE",
		"LOG_LEVEL", "LOG_FORMAT", "TIMEZONE", "REGION_MAX_AQI", "REGION_MAX_PM10", "STATIONS_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 96, cfg.StoreMaxHistory)
	assert.Equal(t, 24*time.Hour, cfg.StoreMaxAge)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, 500.0, cfg.RegionMaxAQI)
	assert.Equal(t, 300.0, cfg.RegionMaxPM10)
	require.Len(t, cfg.Stations, 1)
	assert.Equal(t, "Delhi NCR", cfg.Stations[0].Name)
	assert.Len(t, cfg.Outlook, 7)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("REGION_MAX_PM10", "450")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("STATIONS_FILE", writeFile(t, stationsTOML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 450.0, cfg.RegionMaxPM10)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Len(t, cfg.Stations, 2)
	assert.Equal(t, []int{210, 190, 160}, cfg.Outlook)
}

func TestLoadInvalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("REFRESH_INTERVAL", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "REFRESH_INTERVAL")

	t.Setenv("REFRESH_INTERVAL", "")
	t.Setenv("REGION_MAX_AQI", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "REGION_MAX_AQI")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
