package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/fuotui/internal/fuo"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	// Table colors
	SelectionBg   string
	SelectionText string

	Border string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Player state badge colors
	StateColors map[fuo.PlayerState]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		stateColors: t.StateColors,
		background:  t.Background,
		muted:       t.Muted,
		levelColors: map[logrus.Level]string{
			logrus.PanicLevel: t.Danger,
			logrus.FatalLevel: t.Danger,
			logrus.ErrorLevel: t.Danger,
			logrus.WarnLevel:  t.Warning,
			logrus.InfoLevel:  t.Success,
			logrus.DebugLevel: t.Info,
			logrus.TraceLevel: t.Faint,
		},
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Title    lipgloss.Style
	Header   lipgloss.Style
	Logo     lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style

	stateColors map[fuo.PlayerState]string
	levelColors map[logrus.Level]string
	background  string
	muted       string
}

// StateStyle returns a badge style for the given player state.
func (s Styles) StateStyle(st fuo.PlayerState) lipgloss.Style {
	color := s.stateColors[st]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// LevelStyle returns the foreground style for a log level.
func (s Styles) LevelStyle(lvl logrus.Level) lipgloss.Style {
	color := s.levelColors[lvl]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(lvl <= logrus.WarnLevel)
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Mocha":    mochaTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Mocha"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border: "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		StateColors: map[fuo.PlayerState]string{
			fuo.StatePlaying: "#81b29a", // green
			fuo.StatePaused:  "#dbc074", // yellow
			fuo.StateStopped: "#738091", // comment
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border: "#54546D", // sumiInk6

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		StateColors: map[fuo.PlayerState]string{
			fuo.StatePlaying: "#98BB6C", // springGreen
			fuo.StatePaused:  "#E6C384", // carpYellow
			fuo.StateStopped: "#727169", // fujiGray
		},
	}
}

func mochaTheme() Theme {
	// Catppuccin Mocha palette: https://github.com/catppuccin/catppuccin
	return Theme{
		Name: "Mocha",

		Background: "#11111b", // crust
		Surface:    "#1e1e2e", // base
		SurfaceAlt: "#313244", // surface0

		SelectionBg:   "#45475a", // surface1
		SelectionText: "#cdd6f4", // text

		Border: "#585b70", // surface2

		Text:    "#cdd6f4", // text
		Muted:   "#a6adc8", // subtext0
		Faint:   "#6c7086", // overlay0
		Accent:  "#cba6f7", // mauve
		Success: "#a6e3a1", // green
		Warning: "#f9e2af", // yellow
		Danger:  "#f38ba8", // red
		Info:    "#89dceb", // sky

		StateColors: map[fuo.PlayerState]string{
			fuo.StatePlaying: "#a6e3a1", // green
			fuo.StatePaused:  "#fab387", // peach
			fuo.StateStopped: "#7f849c", // overlay1
		},
	}
}
