package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/logtail"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		m.renderNowPlaying(),
	}
	if len(m.snapshot.Playlist) > 0 {
		sections = append(sections, m.playlist.View())
	}
	if m.showLogs {
		sections = append(sections, m.renderLogs())
	}
	if line := m.renderStatusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	left := styles.Logo.Render("fuotui") + " " + styles.StateStyle(snap.State).Render(stateGlyph(snap.State)+" "+snap.State.String())

	var right string
	switch {
	case snap.IsOffline():
		right = styles.DangerText.Render("daemon offline")
	case !snap.LastSynced.IsZero():
		right = styles.FaintText.Render("synced " + snap.LastSynced.Format("15:04:05"))
	case !snap.HasStatus:
		right = styles.FaintText.Render("waiting for daemon...")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderNowPlaying() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	width := m.width - 6

	var b strings.Builder

	title := styles.Title.Render(truncateText(fallback(snap.Metadata.Title, "Nothing playing"), width/2))
	if artists := snap.Metadata.ArtistLine(); artists != "" {
		title += styles.MutedText.Render(" · " + truncateText(artists, width/2))
	}
	b.WriteString(title)
	b.WriteString("\n")

	album := snap.Metadata.Album.OrElse("")
	b.WriteString(styles.FaintText.Render(truncateText(fallback(album, "-"), width)))
	b.WriteString("\n")

	lyric := styles.AccentText.Render("♪ ") + styles.Text.Render(truncateText(snap.LyricLine, width-2))
	b.WriteString(lyric)
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(snap.Ratio()))
	b.WriteString(" ")
	b.WriteString(styles.MutedText.Render(snap.ProgressLabel()))

	return styles.Panel.Width(m.width - 2).Render(b.String())
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	width := m.width - 6

	lines := make([]string, 0, len(m.logLines))
	for _, raw := range m.logLines {
		lines = append(lines, m.formatLogLine(raw, width))
	}
	for len(lines) < logPaneLines {
		lines = append(lines, "")
	}
	if len(m.logLines) == 0 {
		lines[0] = styles.FaintText.Render("no log output yet")
	}
	return styles.Panel.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) formatLogLine(raw string, width int) string {
	styles := m.theme.Styles()
	entry := logtail.Parse(raw)
	if !entry.Parsed {
		return styles.Text.Render(truncateText(raw, width))
	}

	level := padRight(strings.ToUpper(entry.Level.String()), 7)
	ts := entry.Time
	if len(ts) >= 19 {
		ts = ts[11:19]
	}
	var fields []string
	for _, f := range entry.Fields {
		fields = append(fields, f.Key+"="+f.Value)
	}
	rest := entry.Message
	if len(fields) > 0 {
		rest += " " + strings.Join(fields, " ")
	}
	prefixWidth := len(ts) + len(level) + 2
	return styles.FaintText.Render(ts) + " " +
		styles.LevelStyle(entry.Level).Render(level) + " " +
		styles.Text.Render(truncateText(rest, width-prefixWidth))
}

func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var parts []string
	if snap.SubscriberDown {
		msg := "push channel down"
		if snap.SubscriberError != nil {
			msg += ": " + snap.SubscriberError.Error()
		}
		parts = append(parts, styles.DangerText.Render(msg))
	}
	if snap.LastError != nil {
		parts = append(parts, styles.WarningText.Render("last sync failed: "+snap.LastError.Error()))
	}
	if m.actionErr != nil {
		parts = append(parts, styles.WarningText.Render(m.lastAction+" failed: "+m.actionErr.Error()))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}

func stateGlyph(s fuo.PlayerState) string {
	switch s {
	case fuo.StatePlaying:
		return "▶"
	case fuo.StatePaused:
		return "⏸"
	default:
		return "■"
	}
}
