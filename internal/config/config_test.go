package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

const validYAML = `
num_teams: 24
num_tables: 4
num_jury_rooms: 6
num_timeslots: 40
matches_per_team: 3
jury_sessions_per_team: 1
match_duration: 7
jury_duration: 42
minimum_buffer_time: 8
max_solve_time: 120
`

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoad_FromYAMLFile(t *testing.T) {
	path := writeTempFile(t, "config.yaml", validYAML)

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumTeams != 24 {
		t.Errorf("NumTeams = %d, want 24", cfg.NumTeams)
	}
	if cfg.NumSearchWorkers != input.DefaultNumSearchWorkers {
		t.Errorf("NumSearchWorkers = %d, want default %d", cfg.NumSearchWorkers, input.DefaultNumSearchWorkers)
	}
}

func TestLoad_OverridesWinOverFile(t *testing.T) {
	path := writeTempFile(t, "config.yaml", validYAML)

	newNumTeams := 32
	cfg, err := Load(path, Overrides{NumTeams: &newNumTeams})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumTeams != 32 {
		t.Errorf("NumTeams = %d, want override value 32", cfg.NumTeams)
	}
	if cfg.NumTables != 4 {
		t.Errorf("NumTables = %d, want file value 4 untouched", cfg.NumTables)
	}
}

func TestLoad_EnvOverridesFileButLosesToFlags(t *testing.T) {
	path := writeTempFile(t, "config.yaml", validYAML)

	t.Setenv("FLL_NUM_TEAMS", "48")
	t.Setenv("FLL_NUM_SEARCH_WORKERS", "4")

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumTeams != 48 {
		t.Errorf("NumTeams = %d, want env value 48", cfg.NumTeams)
	}
	if cfg.NumSearchWorkers != 4 {
		t.Errorf("NumSearchWorkers = %d, want env value 4", cfg.NumSearchWorkers)
	}

	newNumTeams := 64
	cfg, err = Load(path, Overrides{NumTeams: &newNumTeams})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumTeams != 64 {
		t.Errorf("NumTeams = %d, want flag value 64 to win over env", cfg.NumTeams)
	}
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{})
	if !errors.Is(err, input.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoad_NoPathUsesOverridesOnly(t *testing.T) {
	numTeams, numTables, numJuryRooms, numTimeslots := 8, 2, 2, 20
	matchesPerTeam, jurySessions := 2, 1
	matchDuration, juryDuration, buffer := 7, 14, 7
	maxSolveTime := 30.0

	cfg, err := Load("", Overrides{
		NumTeams:             &numTeams,
		NumTables:            &numTables,
		NumJuryRooms:         &numJuryRooms,
		NumTimeslots:         &numTimeslots,
		MatchesPerTeam:       &matchesPerTeam,
		JurySessionsPerTeam:  &jurySessions,
		MatchDurationMinutes: &matchDuration,
		JuryDurationMinutes:  &juryDuration,
		MinimumBufferMinutes: &buffer,
		MaxSolveTimeSeconds:  &maxSolveTime,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumTeams != 8 || cfg.MaxSolveTimeSeconds != 30.0 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestValidateAll_RejectsNegativeBreakFields(t *testing.T) {
	cfg := input.Config{
		NumTeams: 8, NumTables: 2, NumJuryRooms: 2, NumTimeslots: 20,
		MatchesPerTeam: 2, JurySessionsPerTeam: 1,
		MatchDurationMinutes: 7, JuryDurationMinutes: 14,
		MaxSolveTimeSeconds: 30,
	}
	negative := -5
	cfg.BreakStartTimeMinutes = &negative

	err := ValidateAll(cfg)
	if err == nil {
		t.Fatal("expected an error for a negative break start time")
	}
	if !errors.Is(err, input.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration in chain, got %v", err)
	}
}

func TestValidateAll_AggregatesMultipleProblems(t *testing.T) {
	var cfg input.Config // zero-value: fails several "required" tags at once

	err := ValidateAll(cfg)
	if err == nil {
		t.Fatal("expected an error for a zero-value config")
	}
	for _, field := range []string{"NumTeams", "NumTables", "MaxSolveTimeSeconds"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not report field %s", err.Error(), field)
		}
	}
}
