package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/forgotten-temple/internal/command"
	"github.com/tatianab/forgotten-temple/internal/engine"
	"github.com/tatianab/forgotten-temple/internal/models"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateDone
)

type model struct {
	state     sessionState
	game      *engine.Game
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#8B4513")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF8E7"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// NewModel wraps a game in the interactive terminal front-end. The
// front-end never touches game state directly: every key binding and
// every typed line turns into a command handed to the engine.
func NewModel(g *engine.Game) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		state:     statePlaying,
		game:      g,
		textInput: ti,
		gameLog: "Welcome to the Forgotten Temple! Type 'help' for commands.\n\n" +
			g.LookAround() + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		// Arrow keys move the player, unless the player is mid-line:
		// then they belong to the text input's cursor.
		case tea.KeyUp, tea.KeyRight, tea.KeyDown, tea.KeyLeft:
			if m.textInput.Value() != "" {
				break
			}
			var dir models.Direction
			switch msg.Type {
			case tea.KeyUp:
				dir = models.North
			case tea.KeyRight:
				dir = models.East
			case tea.KeyDown:
				dir = models.South
			default:
				dir = models.West
			}
			return m.dispatch("go "+dir.String(), command.Command{Kind: command.Go, Direction: dir})

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, tea.Quit
			}
			line := m.textInput.Value()
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()

			parsed, err := command.Parse(line)
			if err != nil {
				m.appendEntry("> "+line, err.Error())
				return m, nil
			}
			return m.dispatch(line, parsed)

		default:
			if m.state == stateDone {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.75)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(logWidth, msg.Height-6)
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// dispatch echoes the player's intent, runs it through the engine, and
// appends the outcome to the transcript.
func (m model) dispatch(echo string, cmd command.Command) (tea.Model, tea.Cmd) {
	if m.state != statePlaying {
		return m, tea.Quit
	}
	outcome := m.game.ProcessCommand(cmd)
	m.appendEntry("> "+echo, outcome)
	if m.game.IsGameOver() {
		m.state = stateDone
		m.gameLog += helpStyle.Render("The game is over. Press any key to exit.") + "\n"
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		m.textInput.Blur()
	}
	return m, nil
}

func (m *model) appendEntry(echo, outcome string) {
	logWidth := int(float64(m.width) * 0.75)
	m.gameLog += userStyle.Width(logWidth).Render(echo) + "\n\n"
	m.gameLog += gameStyle.Width(logWidth).Render(outcome) + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	logView := m.viewport.View()
	stateView := m.renderState()

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		logView,
		stateView,
	)

	help := helpStyle.Render("Arrow keys to move. Commands: go, take, use, look, inventory, help, quit.")
	if m.state == stateDone {
		help = helpStyle.Render("Press any key to exit.")
	}

	input := ""
	if m.state == statePlaying {
		input = "\n" + m.textInput.View()
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		input,
		"\n"+help,
	) + "\n"
}

func (m model) renderState() string {
	location := titleStyle.Render("LOCATION") + "\n" + m.game.Location() + "\n\n"

	itemsTitle := titleStyle.Render("ITEMS HERE") + "\n"
	items := ""
	roomItems := m.game.RoomItems()
	if len(roomItems) == 0 {
		items = "(none)\n"
	} else {
		for _, item := range roomItems {
			items += "- " + item + "\n"
		}
	}
	items += "\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	carried := m.game.Inventory()
	if len(carried) == 0 {
		inventory = "(empty)"
	} else {
		for _, item := range carried {
			inventory += "- " + item + "\n"
		}
	}

	content := location + itemsTitle + items + invTitle + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run starts the terminal front-end and blocks until the player quits
// or the game ends.
func Run(g *engine.Game) error {
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
