package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hkhosravani/sleepbetter/internal/backup"
	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/ledger"
	"github.com/hkhosravani/sleepbetter/internal/logger"
	"github.com/hkhosravani/sleepbetter/internal/models"
	"github.com/hkhosravani/sleepbetter/internal/storage"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if !isFileStore(path) {
		logger.Debug("Skipping automatic backup for non-file store")
		return
	}
	mgr := backup.NewManager(path)
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Ledger builds a ledger configured from the stored profile, falling back to
// defaults when no profile has been saved.
func (c *Context) Ledger() (*ledger.Ledger, error) {
	profile, err := c.Store.GetProfile()
	if err != nil {
		return nil, err
	}
	return ledger.New(ledger.ConfigFromProfile(profile)), nil
}

// NewEntry assembles a validated entry ready for upsert.
func NewEntry(date string, hours float64, bedtime, waketime *float64) (models.Entry, error) {
	now := time.Now().UTC()
	entry := models.Entry{
		ID:        uuid.NewString(),
		Date:      date,
		Hours:     hours,
		Bedtime:   bedtime,
		Waketime:  waketime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := entry.Validate(); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// DeriveBedtime infers when the user must have gone to bed, counting back
// from wake time with overnight wrap.
func DeriveBedtime(wakeTime, hours float64) float64 {
	bedtime := wakeTime - hours
	for bedtime < 0 {
		bedtime += 24
	}
	return bedtime
}

// completeClocks fills whichever of bedtime/waketime is missing so stored
// entries always carry a consistent pair. A lone bedtime gets the wake time
// derived forward with overnight wrap; otherwise the configured wake time is
// assumed and bedtime counted back from it.
func completeClocks(cfg ledger.Config, hours float64, bedtime, waketime *float64) (*float64, *float64) {
	if waketime == nil {
		w := cfg.WakeTime
		if bedtime != nil {
			w = *bedtime + hours
			for w >= 24 {
				w -= 24
			}
		}
		waketime = &w
	}
	if bedtime == nil {
		b := DeriveBedtime(*waketime, hours)
		bedtime = &b
	}
	return bedtime, waketime
}

// isFileStore reports whether a store config path names a local file rather
// than a database connection string.
func isFileStore(path string) bool {
	return !strings.Contains(path, "://")
}

// Shared output styles.
var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	magentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	blueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// sleepStyle grades a night's duration: green at target or above, yellow when
// short, red when severely short.
func sleepStyle(hours float64) lipgloss.Style {
	switch {
	case hours >= constants.DefaultTargetSleep:
		return greenStyle
	case hours >= constants.ShortSleepHours:
		return yellowStyle
	default:
		return redStyle
	}
}

// debtStyle colors a debt figure: red for outstanding debt, green otherwise.
func debtStyle(debt float64) lipgloss.Style {
	if debt > 0 {
		return redStyle
	}
	return greenStyle
}

// formatDebt renders the magnitude of a debt with its color.
func formatDebt(debt float64) string {
	v := debt
	if v < 0 {
		v = -v
	}
	return debtStyle(debt).Render(utils.FormatHours(v))
}

func printRule() {
	fmt.Println(boldStyle.Render("============================================================"))
}

func printBanner(title string) {
	fmt.Println()
	printRule()
	fmt.Println(titleStyle.Render("  " + title))
	printRule()
	fmt.Println()
}
