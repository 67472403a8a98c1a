package help

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/ui/splitpanel"
	"github.com/footprint-tools/cmdspec/internal/ui/style"
)

// ErrNotTerminal is returned when the browser is asked for without a TTY.
var ErrNotTerminal = errors.New("the help browser requires an interactive terminal")

const (
	headerHeight = 1
	footerHeight = 1
)

// Browse opens a full-screen browser over the page's commands.
func Browse(p Page, st domain.Styler, colors style.ColorConfig) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	prog := tea.NewProgram(
		newModel(p, st, colors),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := prog.Run()
	return err
}

type entry struct {
	name    string
	summary string
	body    string
}

func buildEntries(p Page, st domain.Styler) []entry {
	entries := []entry{{name: "(overview)", summary: "all commands", body: Overview(p, st)}}
	for _, c := range p.Commands {
		entries = append(entries, entry{
			name:    c.Name,
			summary: c.Description + " " + strings.Join(c.Aliases, " "),
			body:    Command(*c, p.Globals, st),
		})
	}
	return entries
}

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Switch     key.Binding
	Search     key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("jk", "nav")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("ud", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown", "d")),
		Top:        key.NewBinding(key.WithKeys("home", "g")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G")),
		Switch:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "switch")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	all     []entry
	entries []entry
	cursor  int
	scroll  int

	width  int
	height int

	focusSidebar bool
	searching    bool
	query        string

	title  string
	colors style.ColorConfig
	keys   keyMap
	help   help.Model
}

func newModel(p Page, st domain.Styler, colors style.ColorConfig) model {
	entries := buildEntries(p, st)
	title := p.Metadata.Prompt
	if title == "" {
		title = "help"
	}
	return model{
		all:          entries,
		entries:      entries,
		focusSidebar: true,
		title:        title,
		colors:       colors,
		keys:         defaultKeys(),
		help:         help.New(),
		width:        100,
		height:       30,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg), nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			if msg.String() == "esc" && m.query != "" {
				m.query = ""
				m.filter()
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Search):
			m.searching = true
		case key.Matches(msg, m.keys.Switch):
			m.focusSidebar = !m.focusSidebar
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.ScrollUp):
			m.scroll = max(m.scroll-5, 0)
		case key.Matches(msg, m.keys.ScrollDown):
			m.scroll += 5
		case key.Matches(msg, m.keys.Top):
			m.cursor, m.scroll = 0, 0
		case key.Matches(msg, m.keys.Bottom):
			m.cursor, m.scroll = max(len(m.entries)-1, 0), 0
		}
	}
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
	case tea.KeyEnter:
		m.searching = false
		return m
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	default:
		return m
	}
	m.filter()
	return m
}

// move walks the sidebar or scrolls the content, depending on focus.
func (m *model) move(delta int) {
	if !m.focusSidebar {
		m.scroll = max(m.scroll+delta, 0)
		return
	}
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)
	m.scroll = 0
}

func (m *model) filter() {
	m.cursor, m.scroll = 0, 0
	if m.query == "" {
		m.entries = m.all
		return
	}
	q := strings.ToLower(m.query)
	var out []entry
	for _, e := range m.all {
		if strings.Contains(strings.ToLower(e.name), q) || strings.Contains(strings.ToLower(e.summary), q) {
			out = append(out, e)
		}
	}
	m.entries = out
}

func (m model) View() string {
	mainHeight := max(m.height-headerHeight-footerHeight, 3)

	layout := splitpanel.NewLayout(m.width, splitpanel.Config{
		SidebarWidthPercent: 0.25,
		SidebarMinWidth:     20,
		SidebarMaxWidth:     32,
	}, m.colors)
	layout.SetFocus(m.focusSidebar)

	main := layout.Render(m.sidebar(mainHeight), m.content(mainHeight, layout.MainContentWidth()), mainHeight)
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), main, m.footer())
}

func (m model) header() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info)).Render(m.title)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))

	count := fmt.Sprintf(" (%d commands)", len(m.all)-1)
	switch {
	case m.searching:
		count += fmt.Sprintf("  Search: %s_", m.query)
	case m.query != "":
		count += fmt.Sprintf("  Filter: %s", m.query)
	}
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(title + muted.Render(count))
}

func (m model) sidebar(height int) splitpanel.Panel {
	visible := max(height-2, 1)
	offset := 0
	if m.cursor >= visible {
		offset = m.cursor - visible + 1
	}

	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color(m.colors.Accent))
	if !m.focusSidebar {
		selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Warning))
	}

	var lines []string
	if len(m.entries) == 0 {
		lines = append(lines, lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(m.colors.Muted)).Render("No matches found"))
	}
	for i := offset; i < len(m.entries) && len(lines) < visible; i++ {
		if i == m.cursor {
			lines = append(lines, "> "+selected.Render(m.entries[i].name))
		} else {
			lines = append(lines, "  "+m.entries[i].name)
		}
	}

	return splitpanel.Panel{Lines: lines, ScrollPos: offset, TotalItems: len(m.entries)}
}

func (m model) content(height, width int) splitpanel.Panel {
	if len(m.entries) == 0 {
		return splitpanel.Panel{Lines: []string{"No command selected"}, TotalItems: 1}
	}

	lines := strings.Split(wrapText(m.entries[m.cursor].body, width), "\n")
	visible := max(height-2, 1)
	offset := min(m.scroll, max(len(lines)-visible, 0))

	return splitpanel.Panel{Lines: lines[offset:], ScrollPos: offset, TotalItems: len(lines)}
}

func (m model) footer() string {
	bindings := []key.Binding{m.keys.Search, m.keys.Switch, m.keys.Up, m.keys.ScrollUp, m.keys.Quit}
	if m.searching {
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "confirm")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "cancel")),
		}
	}
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(m.help.ShortHelpView(bindings))
}

// wrapText breaks lines longer than width at word boundaries.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = 72
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if lipgloss.Width(line) <= width {
			out.WriteString(line)
			out.WriteString("\n")
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = indent + word
			case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
				current += " " + word
			default:
				out.WriteString(current)
				out.WriteString("\n")
				current = indent + word
			}
		}
		out.WriteString(current)
		out.WriteString("\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}
