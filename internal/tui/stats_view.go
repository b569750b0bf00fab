// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-keeper/models"
)

const (
	lowBudgetShare      = 0.50
	criticalBudgetShare = 0.10
)

type budgetLevel int

const (
	budgetOK budgetLevel = iota
	budgetLow
	budgetCritical
)

// classifyBudget compares the remaining hours with fractions of the whole
// budget limit.
func classifyBudget(remainingHours float64, limit time.Duration) budgetLevel {
	switch {
	case remainingHours < limit.Hours()*criticalBudgetShare:
		return budgetCritical
	case remainingHours < limit.Hours()*lowBudgetShare:
		return budgetLow
	default:
		return budgetOK
	}
}

// FormatStats renders a usage snapshot as plain lines: online badge, or the
// remaining, used and session hours of an offline session with a warning
// when the budget runs low.
func FormatStats(stats *models.UsageStats, limit time.Duration) string {
	if stats == nil {
		return "Unable to retrieve statistics"
	}

	var b strings.Builder
	if stats.TimeManipulationDetected {
		b.WriteString(criticalStyle.Render("WARNING: time manipulation detected!"))
		b.WriteString("\n")
	}

	if stats.IsCurrentlyOnline {
		b.WriteString(okStyle.Render("Status: online (no time limit)"))
		return b.String()
	}

	b.WriteString("Offline mode:\n")
	fmt.Fprintf(&b, "  Remaining: %.4f hours\n", stats.RemainingOfflineHours)
	fmt.Fprintf(&b, "  Used:      %.4f hours\n", stats.TotalOfflineHours)
	fmt.Fprintf(&b, "  Session:   %.4f hours", stats.CurrentSessionDuration.Hours())

	switch classifyBudget(stats.RemainingOfflineHours, limit) {
	case budgetCritical:
		b.WriteString("\n")
		b.WriteString(criticalStyle.Render(fmt.Sprintf("  CRITICAL: less than %.1f hours left!", limit.Hours()*criticalBudgetShare)))
	case budgetLow:
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("  Low: less than %.1f hours remaining", limit.Hours()*lowBudgetShare)))
	}

	return b.String()
}

func formatEvent(e models.UsageEvent) string {
	outcome := "ok"
	if !e.Success {
		outcome = string(e.Reason)
	}
	return fmt.Sprintf("%s  %-13s  %s",
		e.OccurredAt.Local().Format(time.DateTime),
		e.Operation,
		fitText(outcome, 28),
	)
}
