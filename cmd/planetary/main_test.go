package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planetary/internal/storage"
)

func TestNewLoggerLevel(t *testing.T) {
	defer func(old string) { flagLogLevel = old }(flagLogLevel)

	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			flagLogLevel = tt.level
			logger, err := newLogger(&bytes.Buffer{})
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLoggerPrefix(t *testing.T) {
	defer func(old string) { flagLogLevel = old }(flagLogLevel)
	flagLogLevel = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello")
	if !strings.Contains(buf.String(), "planetary") {
		t.Errorf("log line %q missing prefix", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	defer func(old int) { flagFPS = old }(flagFPS)
	flagFPS = 60

	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60 * 75, "1:15"},
		{60 * 600, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.ticks); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	defer func(old string) { flagDifficulty = old }(flagDifficulty)

	flagDifficulty = "impossible"
	if err := applyGameFlags(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}

	flagDifficulty = "hard"
	if err := applyGameFlags(); err != nil {
		t.Errorf("applyGameFlags: %v", err)
	}
	flagDifficulty = ""
	applyGameFlags()
}

func TestWriteSummary(t *testing.T) {
	defer func(old int) { flagFPS = old }(flagFPS)
	flagFPS = 60

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, run := range []storage.Run{
		{GameID: "planetary", Score: 100, Ticks: 3600, RobotsKilled: 2, ShotsFired: 30},
		{GameID: "planetary", Score: 300, Ticks: 7200, RobotsKilled: 4, ShipsKilled: 1, ShotsFired: 50},
	} {
		if _, err := store.SaveScore(run.GameID, run.Score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	totals, err := store.RunTotals("planetary")
	if err != nil {
		t.Fatalf("RunTotals() failed: %v", err)
	}
	stats, err := store.GetGameStats("planetary")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	var buf bytes.Buffer
	writeSummary(&buf, totals, stats)
	out := buf.String()

	for _, want := range []string{
		"Best: 300  Runs: 2  Longest: 2:00  Robots: 6  Ships: 1  Shots: 80",
		"Games: 2  Average: 200  Total: 400",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Last played: never") {
		t.Errorf("last played should be set:\n%s", out)
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, &storage.RunTotals{}, &storage.GameStats{})
	if !strings.Contains(buf.String(), "Last played: never") {
		t.Errorf("empty summary = %q", buf.String())
	}
}
