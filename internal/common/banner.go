package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/ternarybob/banner"
)

// RunInfo describes a run for the startup banner.
type RunInfo struct {
	RunID   string
	APIBase string
	User    string
}

// PrintBanner displays the startup banner on w.
func PrintBanner(w io.Writer, config *Config, info RunInfo, logger *Logger) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 60
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s\n", hr)
	fmt.Fprintf(w, "%s  TIMCHECK  TIM Planos API integration checks%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "%s\n", hr)
	fmt.Fprintf(w, "\n")

	kvPad := 14
	kvLines := [][2]string{
		{"Version", Version},
		{"Commit", GitCommit},
		{"Environment", config.Environment},
		{"API base", info.APIBase},
		{"Test user", info.User},
		{"Run", info.RunID},
	}
	if config.IsProduction() {
		kvLines = append(kvLines, [2]string{"Warning", "production target, checks create real records"})
	}
	for _, kv := range kvLines {
		fmt.Fprintf(w, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s\n", hr)
	fmt.Fprintf(w, "\n")

	logger.Info().
		Str("version", Version).
		Str("environment", config.Environment).
		Str("api_base", info.APIBase).
		Str("run_id", info.RunID).
		Msg("Starting TIM Planos API checks")

	if config.IsProduction() {
		logger.Warn().Str("api_base", info.APIBase).Msg("Running against production: a test account and transactions will be created")
	}
}
