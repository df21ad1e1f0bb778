package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/calendar"
	"github.com/faizmokh/hari/internal/config"
)

func resolveDate(dateFlag string) (time.Time, error) {
	if strings.TrimSpace(dateFlag) == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseDate(dateFlag)
}

func resolveMask(daysFlag string, cfg config.Config) (calendar.Mask, error) {
	if strings.TrimSpace(daysFlag) == "" {
		return cfg.Mask()
	}
	return calendar.ParseMask(daysFlag)
}

func printMatchesJSON(cmd *cobra.Command, matches []calendar.Match) error {
	type dto struct {
		Date    string `json:"date"`
		Weekday int    `json:"weekday"`
		Label   string `json:"label"`
	}

	list := make([]dto, 0, len(matches))
	for _, m := range matches {
		list = append(list, dto{
			Date:    m.Date.Format(calendar.DateLayout),
			Weekday: int(m.Weekday()),
			Label:   m.Label,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
