package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X cave-combat/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Номер сборки - число дней от начала проекта.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки.
type Info struct {
	BuildID   int
	BuildDate string
	Commit    string
	GoVersion string
	Err       error
}

// BuildID считает номер сборки по BuildDate.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is not set")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, buildEpoch.Format("2006-01-02"))
	}

	// Обе даты в UTC, поэтому деление часов на 24 точное
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current собирает метаданные. Если коммит не передан через ldflags,
// берем ревизию, которую go build записал в бинарник.
func Current() Info {
	info := Info{BuildDate: BuildDate, Commit: BuildCommit}
	info.BuildID, info.Err = BuildID(BuildDate)

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}
	return info
}

// String - строка для -version и стартового лога.
func String() string {
	info := Current()
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}

	if info.Err != nil {
		return fmt.Sprintf("arena dev build commit[%s] %s", commit, info.GoVersion)
	}
	return fmt.Sprintf("arena build %d (%s) commit[%s] %s", info.BuildID, info.BuildDate, commit, info.GoVersion)
}
