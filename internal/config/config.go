// Package config loads the scheduler's input.Config from a config
// file, environment variables, and command-line flag overrides, the
// way NestaMessibestever-tournament-planner/backend/internal/config
// loads its own settings layer, generalized to the numeric knobs of
// run_scheduler_with_params.py.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

// Overrides carries the optional command-line flag values of
// app/command/schedule.go. A nil pointer means "not specified on the
// command line, keep whatever the file/env layer produced."
type Overrides struct {
	NumTeams             *int
	NumTables            *int
	NumJuryRooms         *int
	NumTimeslots         *int
	MatchesPerTeam       *int
	JurySessionsPerTeam  *int
	MatchDurationMinutes *int
	JuryDurationMinutes  *int
	MinimumBufferMinutes *int
	MaxSolveTimeSeconds  *float64
	NumSearchWorkers     *int
	RandomSeed           *int64
}

// Load reads an optional YAML config file, overlays a .env file (if
// present) and the environment variables it populates, and finally
// applies any command-line overrides, so each layer can override the
// one before it. It returns a validated input.Config.
func Load(path string, overrides Overrides) (input.Config, error) {
	var cfg input.Config

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("%w: loading .env: %v", input.ErrConfiguration, err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: reading config file %q: %v", input.ErrConfiguration, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parsing config file %q: %v", input.ErrConfiguration, path, err)
		}
	}

	applyEnv(&cfg)
	applyOverrides(&cfg, overrides)
	cfg = cfg.WithDefaults()

	if err := ValidateAll(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables on top of the YAML layer,
// the same getEnvOrDefault-style convention
// NestaMessibestever-tournament-planner/backend/internal/config uses,
// generalized to the numeric fields of input.Config. A variable only
// takes effect when set and parseable; otherwise the file/default
// layer's value is left untouched.
func applyEnv(cfg *input.Config) {
	setEnvInt(&cfg.NumTeams, "FLL_NUM_TEAMS")
	setEnvInt(&cfg.NumTables, "FLL_NUM_TABLES")
	setEnvInt(&cfg.NumJuryRooms, "FLL_NUM_JURY_ROOMS")
	setEnvInt(&cfg.NumTimeslots, "FLL_NUM_TIMESLOTS")
	setEnvInt(&cfg.MatchesPerTeam, "FLL_MATCHES_PER_TEAM")
	setEnvInt(&cfg.JurySessionsPerTeam, "FLL_JURY_SESSIONS_PER_TEAM")
	setEnvInt(&cfg.MatchDurationMinutes, "FLL_MATCH_DURATION")
	setEnvInt(&cfg.JuryDurationMinutes, "FLL_JURY_DURATION")
	setEnvInt(&cfg.MinimumBufferMinutes, "FLL_MIN_BUFFER")
	setEnvInt(&cfg.NumSearchWorkers, "FLL_NUM_SEARCH_WORKERS")
	setEnvFloat64(&cfg.MaxSolveTimeSeconds, "FLL_MAX_SOLVE_TIME")
	setEnvInt64(&cfg.RandomSeed, "FLL_RANDOM_SEED")
}

func setEnvInt(dst *int, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*dst = parsed
		}
	}
}

func setEnvInt64(dst *int64, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			*dst = parsed
		}
	}
}

func setEnvFloat64(dst *float64, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*dst = parsed
		}
	}
}

func applyOverrides(cfg *input.Config, o Overrides) {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.NumTeams, o.NumTeams)
	set(&cfg.NumTables, o.NumTables)
	set(&cfg.NumJuryRooms, o.NumJuryRooms)
	set(&cfg.NumTimeslots, o.NumTimeslots)
	set(&cfg.MatchesPerTeam, o.MatchesPerTeam)
	set(&cfg.JurySessionsPerTeam, o.JurySessionsPerTeam)
	set(&cfg.MatchDurationMinutes, o.MatchDurationMinutes)
	set(&cfg.JuryDurationMinutes, o.JuryDurationMinutes)
	set(&cfg.MinimumBufferMinutes, o.MinimumBufferMinutes)
	set(&cfg.NumSearchWorkers, o.NumSearchWorkers)

	if o.MaxSolveTimeSeconds != nil {
		cfg.MaxSolveTimeSeconds = *o.MaxSolveTimeSeconds
	}
	if o.RandomSeed != nil {
		cfg.RandomSeed = *o.RandomSeed
	}
}

// ValidateAll aggregates every validation problem instead of
// returning only the first, the way Nomad's agent config validation
// collects multiple problems before failing: struct-tag validation
// plus the echo-only break-window fields, which carry no "validate"
// tag because they never constrain the core.
func ValidateAll(cfg input.Config) error {
	var result *multierror.Error

	if err := cfg.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if cfg.BreakStartTimeMinutes != nil && *cfg.BreakStartTimeMinutes < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: break_start_time must be >= 0", input.ErrConfiguration))
	}
	if cfg.BreakDurationMinutes != nil && *cfg.BreakDurationMinutes < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: break_duration must be >= 0", input.ErrConfiguration))
	}

	return result.ErrorOrNil()
}
