// internal/tui/app.go
//
// The terminal UI for the auction night, built on bubbletea:
//
// 1. Model: the App struct below holds all UI state
// 2. Update: key presses become session actions
// 3. View: renders the board from the session state
//
// Every action runs to completion inside one Update call; the session is
// never mutated concurrently.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askelund/tjanseauktion/internal/currency"
	"github.com/askelund/tjanseauktion/internal/input"
	"github.com/askelund/tjanseauktion/internal/message"
	"github.com/askelund/tjanseauktion/internal/session"
)

// focusArea tracks which text box, if any, is in edit mode.
type focusArea int

const (
	focusNone focusArea = iota
	focusBid
	focusConvert
)

// logTailLimit is how many message log lines the output panel shows.
const logTailLimit = 10

// menuEntry is one command menu line: either a key binding with its help
// text, or a plain help line under the preceding binding.
type menuEntry struct {
	key  string
	help string
}

var cmdMenu = []menuEntry{
	{key: "b", help: "Edit bid text box"},
	{help: "<ENTER> to try and place bid"},
	{help: "<ESC> to cancel"},
	{help: "Bid syntax: " + input.BidSyntax},
	{help: "Instant win syntax: " + input.InstantWinSyntax},
	{help: "Freebie syntax: " + input.FreebieSyntax},
	{key: "c", help: "Edit conversion text box"},
	{help: "<ENTER> to try and convert"},
	{help: "<ESC> to cancel"},
	{help: "Syntax: " + input.ConversionSyntax},
	{key: "s", help: "Sell chore to highest bidder"},
	{key: "r", help: "Reset bids for current auction"},
	{key: "p", help: "Revert last auction"},
	{key: "q", help: "Quit"},
}

// App is the bubbletea model driving the auction board.
type App struct {
	sess *session.Session

	bid     textinput.Model
	convert textinput.Model
	focus   focusArea

	styles     styles
	msg        message.Message
	persistErr error

	width  int
	height int
}

// NewApp builds the UI around an already constructed session.
func NewApp(sess *session.Session) *App {
	bid := textinput.New()
	bid.CharLimit = 20
	bid.Width = 20

	convert := textinput.New()
	convert.CharLimit = 20
	convert.Width = 20

	return &App{
		sess:    sess,
		bid:     bid,
		convert: convert,
		styles:  newStyles(),
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called for every incoming message.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.focus != focusNone {
			return a.updateEditing(msg)
		}
		return a.updateIdle(msg)
	}

	return a, nil
}

// updateIdle handles single-key commands while no text box is focused.
func (a *App) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "b":
		a.focus = focusBid
		return a, a.bid.Focus()

	case "c":
		a.focus = focusConvert
		return a, a.convert.Focus()

	case "s":
		a.commit(a.sess.Sell())

	case "r":
		a.commit(a.sess.Reset())

	case "p":
		a.commit(a.sess.RevertLast())
	}

	return a, nil
}

// updateEditing routes keys into the focused text box. Enter submits the
// line as one action; esc discards it with no state change.
func (a *App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.blur()
		return a, nil

	case "enter":
		raw := a.focusedValue()
		focus := a.focus
		a.blur()
		if strings.TrimSpace(raw) == "" {
			return a, nil
		}
		if focus == focusBid {
			a.commit(a.sess.HandleBidInput(raw))
		} else {
			a.commit(a.sess.HandleConversion(raw))
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.focus == focusBid {
		a.bid, cmd = a.bid.Update(msg)
	} else {
		a.convert, cmd = a.convert.Update(msg)
	}
	return a, cmd
}

func (a *App) focusedValue() string {
	if a.focus == focusBid {
		return a.bid.Value()
	}
	return a.convert.Value()
}

func (a *App) blur() {
	a.bid.Blur()
	a.bid.Reset()
	a.convert.Blur()
	a.convert.Reset()
	a.focus = focusNone
}

// commit records one finished action: log the notification, rewrite the
// snapshot, and keep the message around for the output line.
func (a *App) commit(msg message.Message) {
	a.msg = msg
	a.persistErr = a.sess.Record(msg)
}

// View renders the whole board.
func (a *App) View() string {
	var sections []string

	sections = append(sections,
		a.styles.title.Render("Tjanseauktion"),
		a.styles.rule.Render(strings.Repeat("-", 40)),
		a.headerView(),
		a.styles.rule.Render(strings.Repeat("-", 40)),
		a.teamTableView(),
		a.styles.rule.Render(strings.Repeat("-", 40)),
		a.inputBoxesView(),
		a.messageView(),
		a.logPanelView(),
		a.menuView(),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if a.width > 0 {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, content)
	}
	return content
}

func (a *App) headerView() string {
	cur := a.sess.Current()
	if cur == nil {
		return a.styles.header.Render("Done!")
	}

	bidder := "none"
	if cur.Bidder != nil {
		bidder = cur.Bidder.String()
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		a.styles.header.Render("Current auction: "+cur.String()),
		fmt.Sprintf("Highest bidder: %s (%d / %s)", bidder, cur.CurrentBid, cur.CurrentBidStr),
	)
}

func (a *App) teamTableView() string {
	rows := make([]string, 0, len(a.sess.Teams()))
	for _, t := range a.sess.Teams() {
		row := fmt.Sprintf("%-16s%-12s%-12s%s",
			fmt.Sprintf("Chores: %d", len(t.Chores)),
			fmt.Sprintf("ID: %d", t.ID),
			t.String(),
			currency.CoinString(t.Coins, t.HasFreeWin),
		)
		style := a.styles.teamRow
		if len(t.Chores) >= a.sess.ChoresPerTeam() {
			style = a.styles.quotaMet
		}
		rows = append(rows, style.Render(row))
	}
	return strings.Join(rows, "\n")
}

func (a *App) inputBoxesView() string {
	bidBox := lipgloss.JoinVertical(lipgloss.Center,
		a.styles.boxLabel.Render("Place bid"),
		a.styles.inputBox.Render(a.bid.View()),
	)
	convertBox := lipgloss.JoinVertical(lipgloss.Center,
		a.styles.boxLabel.Render("Convert"),
		a.styles.inputBox.Render(a.convert.View()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, bidBox, "   ", convertBox)
}

func (a *App) messageView() string {
	if a.persistErr != nil {
		return a.styles.errMsg.Render(fmt.Sprintf("Error: saving state failed: %v", a.persistErr))
	}
	if a.msg.IsZero() {
		return ""
	}
	if a.msg.Level == message.LevelError {
		return a.styles.errMsg.Render(a.msg.Text)
	}
	return a.styles.success.Render(a.msg.Text)
}

func (a *App) logPanelView() string {
	lines := a.sess.LogTail(logTailLimit)
	body := strings.Join(lines, "\n")
	if body == "" {
		body = " "
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		a.styles.logHeader.Render("Output log"),
		a.styles.logPanel.Render(body),
	)
}

func (a *App) menuView() string {
	lines := make([]string, 0, len(cmdMenu))
	for _, entry := range cmdMenu {
		if entry.key != "" {
			lines = append(lines, a.styles.menuKey.Render(entry.key)+"  "+entry.help)
			continue
		}
		lines = append(lines, a.styles.menuHelp.Render("   "+entry.help))
	}
	return strings.Join(lines, "\n")
}
