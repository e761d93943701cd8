package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
	"github.com/naoina/toml"
	log "github.com/sirupsen/logrus"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
)

type AppConfig struct {
	Port string

	// RefreshInterval controls how often station snapshots are recomputed.
	RefreshInterval time.Duration

	// In-memory store retention.
	StoreMaxHistory int           // max number of snapshots per station (0 = unlimited)
	StoreMaxAge     time.Duration // max age of snapshots (0 = unlimited)

	LogLevel  string
	LogFormat string // "text" or "json"

	// Location is the time zone used for the hour and month of estimates.
	Location *time.Location

	// Regional worst case used to plan resources for a station.
	RegionMaxAQI  float64
	RegionMaxPM10 float64

	Stations []airquality.Station
	Outlook  []int
}

// StationsFile is the TOML layout of STATIONS_FILE.
//
//	outlook = [178, 195, 152]
//
//	[[station]]
//	name = "Anand Vihar"
//	  [[station.monitor]]
//	  pm25 = 110.0
//	  pm10 = 182.0
//	  wind_speed = 2.0
//	  temperature = 15.0
//	  humidity = 60.0
type StationsFile struct {
	Outlook  []int          `toml:"outlook"`
	Stations []stationEntry `toml:"station"`
}

type stationEntry struct {
	Name     string                            `toml:"name"`
	Monitors []airquality.EnvironmentalReading `toml:"monitor"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFormat = getenvDefault("LOG_FORMAT", "text")

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals

	maxAge, err := time.ParseDuration(getenvDefault("STORE_MAX_AGE", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	loc, err := time.LoadLocation(getenvDefault("TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.RegionMaxAQI = getenvFloat("REGION_MAX_AQI", 500)
	cfg.RegionMaxPM10 = getenvFloat("REGION_MAX_PM10", 300)
	if cfg.RegionMaxAQI <= 0 || cfg.RegionMaxPM10 <= 0 {
		return nil, fmt.Errorf("REGION_MAX_AQI and REGION_MAX_PM10 must be greater than zero")
	}

	sf := DefaultStations()
	if path := os.Getenv("STATIONS_FILE"); path != "" {
		sf, err = LoadStations(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.Stations = sf.toStations()
	cfg.Outlook = sf.Outlook

	return cfg, nil
}

// LoadStations decodes and checks a stations file.
func LoadStations(path string) (*StationsFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stations file: %w", err)
	}
	defer f.Close()

	var sf StationsFile
	if err := toml.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode stations file %s: %w", path, err)
	}
	if err := sf.check(); err != nil {
		return nil, fmt.Errorf("stations file %s: %w", path, err)
	}
	return &sf, nil
}

// DefaultStations is used when no stations file is configured.
func DefaultStations() *StationsFile {
	return &StationsFile{
		Outlook: []int{178, 195, 152, 120, 89, 65, 48},
		Stations: []stationEntry{{
			Name: "Delhi NCR",
			Monitors: []airquality.EnvironmentalReading{{
				PM25:        110,
				PM10:        182,
				WindSpeed:   3.3,
				Temperature: 28,
				Humidity:    62,
			}},
		}},
	}
}

func (sf *StationsFile) check() error {
	if len(sf.Stations) == 0 {
		return fmt.Errorf("no stations defined")
	}
	seen := make(map[string]bool, len(sf.Stations))
	for i, st := range sf.Stations {
		if st.Name == "" {
			return fmt.Errorf("station %d has no name", i)
		}
		if seen[st.Name] {
			return fmt.Errorf("station %q defined twice", st.Name)
		}
		seen[st.Name] = true
		if len(st.Monitors) == 0 {
			return fmt.Errorf("station %q has no monitors", st.Name)
		}
	}
	return nil
}

func (sf *StationsFile) toStations() []airquality.Station {
	out := make([]airquality.Station, 0, len(sf.Stations))
	for _, st := range sf.Stations {
		out = append(out, airquality.Station{Name: st.Name, Monitors: st.Monitors})
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
