package version

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X github.com/Samwisebuze/rustlike/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Name - имя программы в баннере и логах.
const Name = "rustlike"

// buildEpoch - день ноль для номера сборки.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки.
type Info struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	Calculated bool
	Error      string
}

// BuildID - число дней от buildEpoch до BuildDate.
func BuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Обе даты в UTC, переходов на летнее время нет
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Get собирает Info. Ошибка вычисления номера сборки не фатальна.
func Get() Info {
	info := Info{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	id, err := BuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для -version и баннера.
func String() string {
	info := Get()
	if !info.Calculated {
		return fmt.Sprintf("%s dev build (%s)", Name, info.Error)
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s]",
		Name,
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
	)
}

// Fields - те же данные для структурного лога.
func Fields() logrus.Fields {
	info := Get()
	return logrus.Fields{
		"component": "version",
		"build_id":  info.BuildID,
		"date":      coalesce(info.BuildDate, "dev"),
		"commit":    coalesce(info.Commit, "unknown"),
	}
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
