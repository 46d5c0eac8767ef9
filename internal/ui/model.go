package ui

import (
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/folio/internal/assets"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/content"
	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/nav"
	"github.com/olivier-w/folio/internal/page"
	"github.com/olivier-w/folio/internal/scroll"
	"github.com/olivier-w/folio/internal/wavefield"
)

// Options configures the page model.
type Options struct {
	Site    *content.Site
	Config  *config.Config
	BaseDir string     // asset paths are resolved against it
	Rand    *rand.Rand // nil uses a random seed
}

type renderedSection struct {
	id    string
	lines []string
}

// Model is the Bubbletea model for the portfolio page.
type Model struct {
	site    *content.Site
	cfg     *config.Config
	baseDir string

	loop    *frame.Loop
	window  *page.Window
	canvas  *wavefield.BrailleCanvas
	field   *wavefield.Field
	nav     *nav.Controller
	tracker *scroll.Tracker

	keys        keyMap
	help        help.Model
	progress    progress.Model
	strokeStyle lipgloss.Style

	width    int
	height   int
	sections []renderedSection
	thumbs   map[thumbKey]assets.Thumbnail
	pending  map[thumbKey]bool
	cursor   int
	start    time.Time
	ticking  bool
	mounted  bool
	quitting bool
}

// New creates a page model. Components mount on the first window size.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	site := opts.Site
	if site == nil {
		site = content.Default()
	}

	loop := frame.NewLoop()
	fieldOpts := []wavefield.Option{
		wavefield.WithScale(2, 4),
		wavefield.WithRegenerateOnResize(cfg.Waves.RegenerateOnResize),
	}
	if opts.Rand != nil {
		fieldOpts = append(fieldOpts, wavefield.WithRand(opts.Rand))
	}
	stroke := wavefield.StrokeColor(cfg.Waves.Stroke, cfg.Waves.Background, cfg.Waves.Opacity)

	return Model{
		site:    site,
		cfg:     cfg,
		baseDir: opts.BaseDir,
		loop:    loop,
		window:  page.NewWindow(loop, 0, 0, page.WithFPS(cfg.FPS)),
		canvas:  wavefield.NewBrailleCanvas(0, 0),
		field:   wavefield.New(loop, fieldOpts...),
		nav:     nav.NewController(cfg.Nav.CompactThreshold),
		tracker: scroll.NewTracker(loop,
			scroll.WithFPS(cfg.FPS),
			scroll.WithSpring(cfg.Progress.Stiffness, cfg.Progress.Damping, cfg.Progress.RestDelta),
		),
		keys:        newKeyMap(),
		help:        newHelp(),
		progress:    newProgressBar(),
		strokeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(stroke)),
		thumbs:      make(map[thumbKey]assets.Thumbnail),
		pending:     make(map[thumbKey]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.site.Name)
}

// NavState exposes the navigation state.
func (m Model) NavState() nav.State { return m.nav.State() }

// ScrollProgress is the smoothed scroll progress shown by the indicator.
func (m Model) ScrollProgress() float64 { return m.tracker.Value() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	if tick := next.scheduleFrame(); tick != nil {
		cmd = tea.Batch(cmd, tick)
	}
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.window.Resize(msg.Width, msg.Height)
		if !m.mounted && !m.quitting {
			m.mount()
		}
		return m, tea.Batch(m.relayout()...)

	case frameMsg:
		m.ticking = false
		if !m.mounted {
			return m, nil
		}
		m.loop.Fire(time.Time(msg).Sub(m.start))
		return m, nil

	case assetLoadedMsg:
		if msg.err != nil {
			log.Printf("asset %s: %v", msg.key.path, msg.err)
		}
		m.thumbs[msg.key] = msg.thumb
		return m, tea.Batch(m.relayout()...)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.window.ScrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.window.ScrollBy(3)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.teardown()
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	links := nav.Links()
	if m.nav.State().OverlayOpen && m.layout() == nav.Mobile {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(links)
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(links) - 1) % len(links)
		case key.Matches(msg, m.keys.Select):
			m.nav.Select(links[m.cursor])
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
			m.nav.Toggle()
		case key.Matches(msg, m.keys.Jump):
			m.nav.Select(links[jumpIndex(msg)])
		case key.Matches(msg, m.keys.Home):
			m.nav.SelectHome()
		}
		return m, nil
	}

	step := float64(max(m.height-4, 1))
	switch {
	case key.Matches(msg, m.keys.Down):
		m.window.ScrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.window.ScrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.window.ScrollBy(step)
	case key.Matches(msg, m.keys.PageUp):
		m.window.ScrollBy(-step)
	case key.Matches(msg, m.keys.Top):
		m.window.ScrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.window.ScrollTo(m.window.MaxScroll())
	case key.Matches(msg, m.keys.Menu):
		if m.layout() == nav.Mobile {
			m.cursor = 0
			m.nav.Toggle()
		}
	case key.Matches(msg, m.keys.Close):
		m.nav.Close()
	case key.Matches(msg, m.keys.Jump):
		m.nav.Select(links[jumpIndex(msg)])
	case key.Matches(msg, m.keys.Home):
		m.nav.SelectHome()
	}
	return m, nil
}

func (m *Model) mount() {
	m.start = time.Now()
	m.field.Mount(m.canvas, m.window)
	m.nav.Mount(m.window)
	m.tracker.Mount(m.window)
	m.mounted = true
}

// teardown detaches every component from the window and cancels pending frames.
func (m *Model) teardown() {
	if !m.mounted {
		return
	}
	m.field.Unmount()
	m.tracker.Unmount()
	m.nav.Unmount()
	m.window.Close()
	m.mounted = false
}

// scheduleFrame starts the tick loop when frame callbacks are waiting.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.quitting || m.ticking || m.loop.Pending() == 0 {
		return nil
	}
	m.ticking = true
	return frameCmd(m.cfg.FPS)
}

func (m Model) layout() nav.Layout {
	return nav.LayoutFor(m.width, m.cfg.Nav.Breakpoint)
}

// relayout re-renders the sections for the current size and publishes the
// new document layout. It returns loads for thumbnails not seen yet.
func (m *Model) relayout() []tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	var cmds []tea.Cmd
	thumb := func(path string, cols, rows int) assets.Thumbnail {
		if path == "" {
			return assets.Placeholder(cols, rows)
		}
		k := thumbKey{path: path, cols: cols, rows: rows}
		if t, ok := m.thumbs[k]; ok {
			return t
		}
		if !m.pending[k] {
			m.pending[k] = true
			cmds = append(cmds, loadAssetCmd(k, m.resolve(path)))
		}
		return assets.Placeholder(cols, rows)
	}

	l := sectionLayout{width: m.width, height: m.height, desktop: m.layout() == nav.Desktop}
	m.sections = []renderedSection{
		{id: "about", lines: renderAbout(m.site, l, thumb)},
		{id: "projects", lines: renderProjects(m.site, l, thumb)},
		{id: "contact", lines: renderContact(m.site, l)},
	}

	sections := []page.Section{{ID: nav.HomeID, Height: m.height}}
	for _, s := range m.sections {
		sections = append(sections, page.Section{ID: s.id, Height: len(s.lines)})
	}
	m.window.SetLayout(page.NewDocument(sections...))
	return cmds
}

func (m Model) resolve(path string) string {
	if m.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

func (m Model) View() string {
	if m.quitting || !m.mounted || m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := make([]string, m.height)
	top := int(m.window.ScrollY())
	for r := range rows {
		rows[r] = m.docLine(top + r)
	}

	state := m.nav.State()
	layout := m.layout()
	if state.OverlayOpen && layout == nav.Mobile {
		m.drawOverlay(rows)
	}
	m.drawNavBar(rows, state, layout)
	rows[0] = renderProgressLine(m.progress, m.tracker.Value(), m.width)
	if m.height >= 10 {
		mobile := layout == nav.Mobile
		h := m.help.ShortHelpView(m.keys.shortHelp(mobile, state.OverlayOpen && mobile))
		rows[m.height-1] = fitLine(" "+h, m.width)
	}
	return strings.Join(rows, "\n")
}

func (m Model) docLine(row int) string {
	if row < m.height {
		return m.heroLine(row)
	}
	row -= m.height
	for _, s := range m.sections {
		if row < len(s.lines) {
			return s.lines[row]
		}
		row -= len(s.lines)
	}
	return strings.Repeat(" ", m.width)
}
