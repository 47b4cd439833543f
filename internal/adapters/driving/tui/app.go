package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// answerReceived carries a completed answer back into the update loop.
type answerReceived struct {
	answer domain.Answer
}

// answerFailed carries a pipeline error back into the update loop.
type answerFailed struct {
	err error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *Styles

	// input is the question input field.
	input textinput.Model

	// answer is the last answer, nil before the first question.
	answer *domain.Answer

	// asking is true while a question is being evaluated.
	asking bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Ask a question..."
	input.CharLimit = 512
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  input,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for answer evaluation.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns the updated model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 6
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case answerReceived:
		a.asking = false
		a.err = nil
		a.answer = &msg.answer
		return a, nil

	case answerFailed:
		a.asking = false
		a.err = msg.err
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		a.input.SetValue("")
		a.answer = nil
		a.err = nil
		return a, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" || a.asking {
			return a, nil
		}
		a.asking = true
		return a, a.ask(query)
	}

	// q quits only with an empty input, so questions can contain it
	if msg.String() == "q" && strings.TrimSpace(a.input.Value()) == "" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// ask evaluates the query off the update loop.
func (a *App) ask(query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.ports.Answer.Answer(a.ctx, query)
		if err != nil {
			return answerFailed{err: err}
		}
		return answerReceived{answer: answer}
	}
}

// View renders the application.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Ansera"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	switch {
	case a.asking:
		b.WriteString(a.styles.Muted.Render("Thinking..."))
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	case a.answer != nil:
		b.WriteString(a.renderAnswer())
	default:
		b.WriteString(a.styles.Muted.Render("Type a question and press Enter."))
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("Enter: ask  Esc: clear  q: quit"))

	return b.String()
}

// renderAnswer renders the current answer with its sources.
func (a *App) renderAnswer() string {
	var b strings.Builder

	if a.answer.NoMatch {
		b.WriteString(a.styles.Muted.Render("No good answer found in the corpus."))
		if hint := a.browseHint(); hint != "" {
			b.WriteString("\n")
			b.WriteString(a.styles.Muted.Render(hint))
		}
		return b.String()
	}

	b.WriteString(a.styles.Lead.Render(a.answer.Lead))

	if len(a.answer.Sources) > 0 {
		b.WriteString("\n\n")
		b.WriteString(a.styles.Source.Render("Sources:"))
		for i, src := range a.answer.Sources {
			b.WriteString("\n")
			line := fmt.Sprintf("  [%d] %s", i+1, src.Title)
			if src.Heading != "" {
				line += ": " + src.Heading
			}
			b.WriteString(a.styles.Source.Render(line))
		}
	}

	return b.String()
}

// browseHint lists a few document titles to point the user somewhere useful
// after a no-match answer.
func (a *App) browseHint() string {
	if a.ports.Corpus == nil {
		return ""
	}

	docs, err := a.ports.Corpus.Documents(a.ctx)
	if err != nil || len(docs) == 0 {
		return ""
	}

	const maxHint = 3
	titles := make([]string, 0, maxHint)
	for i := range docs {
		if i == maxHint {
			break
		}
		titles = append(titles, docs[i].Title)
	}

	return "Available topics: " + strings.Join(titles, ", ")
}
