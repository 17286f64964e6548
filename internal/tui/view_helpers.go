// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(uiDivider))
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

// fitText cuts v to max display cells, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(v) <= max {
		return v
	}

	runes := []rune(v)
	if max <= 1 {
		return string(runes[:max])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// cell fits v into a column of width w, padding with spaces.
func cell(v string, w int) string {
	v = fitText(v, w)
	return v + strings.Repeat(" ", max(0, w-lipgloss.Width(v)))
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
