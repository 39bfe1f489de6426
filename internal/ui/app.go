package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/logtail"
	"github.com/five82/fuotui/internal/prefs"
	"github.com/five82/fuotui/internal/state"
)

const (
	defaultRefreshTick = 500 * time.Millisecond
	actionTimeout      = 5 * time.Second
	logPaneLines       = 10
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Client      fuo.Requester
	Store       *state.Store
	Sync        func(context.Context) error // Full re-sync after a control command
	LogFile     string
	RefreshTick time.Duration
	ThemeName   string
	PrefsPath   string
	ShowLogs    bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	client      fuo.Requester
	store       *state.Store
	sync        func(context.Context) error
	logFile     string
	prefsPath   string
	refreshTick time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	bar      progress.Model
	playlist table.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	showLogs bool

	// Data state
	snapshot   state.Snapshot
	logLines   []string
	lastAction string
	actionErr  error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refreshTick := opts.RefreshTick
	if refreshTick <= 0 {
		refreshTick = defaultRefreshTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		sync:        opts.Sync,
		logFile:     opts.LogFile,
		prefsPath:   prefsPath,
		refreshTick: refreshTick,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		showLogs:    opts.ShowLogs,
		playlist: table.New(
			table.WithColumns(playlistColumns(80)),
			table.WithFocused(false),
			table.WithHeight(8),
		),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refreshTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showLogs {
		cmds = append(cmds, readLogCmd(m.logFile))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.updatePlaylist()
		return m, nil

	case logLinesMsg:
		m.logLines = msg
		return m, nil

	case actionMsg:
		m.lastAction = msg.name
		m.actionErr = msg.err
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		m.layout()
		m.savePrefs()
		if m.showLogs {
			return m, readLogCmd(m.logFile)
		}
		return m, nil

	case key.Matches(msg, m.keys.Sync):
		return m, m.syncCmd()

	case key.Matches(msg, m.keys.Toggle):
		return m, m.controlCmd(fuo.CommandToggle)
	case key.Matches(msg, m.keys.Next):
		return m, m.controlCmd(fuo.CommandNext)
	case key.Matches(msg, m.keys.Previous):
		return m, m.controlCmd(fuo.CommandPrevious)
	case key.Matches(msg, m.keys.Stop):
		return m, m.controlCmd(fuo.CommandStop)
	}

	return m, nil
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showLogs {
		cmds = append(cmds, readLogCmd(m.logFile))
	}
	cmds = append(cmds, tickCmd(m.refreshTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) applyTheme() {
	m.bar = progress.New(
		progress.WithSolidFill(m.theme.Accent),
		progress.WithoutPercentage(),
	)
	m.layout()

	styles := table.DefaultStyles()
	th := m.theme.Styles()
	styles.Header = styles.Header.Foreground(th.AccentText.GetForeground()).Bold(true)
	styles.Selected = th.Selected
	m.playlist.SetStyles(styles)
}

func (m *Model) layout() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	labelWidth := len(m.snapshot.ProgressLabel()) + 1
	m.bar.Width = lo.Max([]int{width - labelWidth, 10})
	m.help.Width = width
	m.playlist.SetColumns(playlistColumns(width))
	m.playlist.SetWidth(width)

	reserved := 12
	if m.showLogs {
		reserved += logPaneLines + 2
	}
	height := m.height - reserved
	if height < 3 {
		height = 3
	}
	m.playlist.SetHeight(height)
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, ShowLogs: m.showLogs}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.WithError(err).Warn("save prefs")
	}
}

func (m *Model) updatePlaylist() {
	current := m.snapshot.Metadata.Title
	rows := lo.Map(m.snapshot.Playlist, func(s fuo.BriefSong, i int) table.Row {
		marker := fmt.Sprintf("%d", i+1)
		if current != "" && s.Title == current {
			marker = "▶"
		}
		return table.Row{marker, s.Title, s.ArtistsName, s.AlbumName, s.DurationMS}
	})
	m.playlist.SetRows(rows)
	m.layout()
}

func playlistColumns(width int) []table.Column {
	const numW, durW = 4, 8
	rest := width - numW - durW - 8
	if rest < 30 {
		rest = 30
	}
	titleW := rest * 2 / 5
	artistW := rest * 3 / 10
	albumW := rest - titleW - artistW
	return []table.Column{
		{Title: "#", Width: numW},
		{Title: "Title", Width: titleW},
		{Title: "Artist", Width: artistW},
		{Title: "Album", Width: albumW},
		{Title: "Length", Width: durW},
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logLinesMsg []string

type actionMsg struct {
	name string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logPaneLines)
		if err != nil {
			return logLinesMsg{err.Error()}
		}
		return logLinesMsg(lines)
	}
}

func (m Model) syncCmd() tea.Cmd {
	ctx, syncFn := m.ctx, m.sync
	return func() tea.Msg {
		if syncFn == nil {
			return actionMsg{name: "sync"}
		}
		return actionMsg{name: "sync", err: syncFn(ctx)}
	}
}

func (m Model) controlCmd(cmd fuo.PlayerCommand) tea.Cmd {
	ctx, client, syncFn := m.ctx, m.client, m.sync
	return func() tea.Msg {
		if client == nil {
			return actionMsg{name: string(cmd), err: fmt.Errorf("no control client")}
		}
		callCtx, cancel := context.WithTimeout(ctx, actionTimeout)
		defer cancel()
		if err := client.Control(callCtx, cmd); err != nil {
			log.WithError(err).WithField("command", cmd).Warn("control command failed")
			return actionMsg{name: string(cmd), err: err}
		}
		if syncFn != nil {
			if err := syncFn(ctx); err != nil {
				return actionMsg{name: string(cmd), err: err}
			}
		}
		return actionMsg{name: string(cmd)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
