// Package ui implements the console menu. Menus are a finite set of states;
// each state has a table of numbered entries naming an action and the state
// to move to afterwards.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"movierental/internal/app"
)

// State is one menu of the console UI.
type State int

const (
	StateMain State = iota
	StateMovies
	StateClients
	StateRentals
	StateSearch
	StateStats
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateMovies:
		return "movies"
	case StateClients:
		return "clients"
	case StateRentals:
		return "rentals"
	case StateSearch:
		return "search"
	case StateStats:
		return "stats"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// entry is one numbered line of a menu. A nil action only changes state.
type entry struct {
	label  string
	action func(*Menu) error
	next   State
}

// transitions maps each state to its numbered entries, in display order.
var transitions = map[State][]entry{
	StateMain: {
		{label: "Manage Movies", next: StateMovies},
		{label: "Manage Clients", next: StateClients},
		{label: "Manage Rentals", next: StateRentals},
		{label: "Search", next: StateSearch},
		{label: "Statistics", next: StateStats},
		{label: "Exit", next: StateExit},
		{label: "Undo", action: (*Menu).undo, next: StateMain},
		{label: "Redo", action: (*Menu).redo, next: StateMain},
	},
	StateMovies: {
		{label: "Add Movie", action: (*Menu).addMovie, next: StateMovies},
		{label: "Update Movie", action: (*Menu).updateMovie, next: StateMovies},
		{label: "Remove Movie", action: (*Menu).removeMovie, next: StateMovies},
		{label: "List Movies", action: (*Menu).listMovies, next: StateMovies},
		{label: "Back", next: StateMain},
	},
	StateClients: {
		{label: "Add Client", action: (*Menu).addClient, next: StateClients},
		{label: "Update Client", action: (*Menu).updateClient, next: StateClients},
		{label: "Remove Client", action: (*Menu).removeClient, next: StateClients},
		{label: "List Clients", action: (*Menu).listClients, next: StateClients},
		{label: "Back", next: StateMain},
	},
	StateRentals: {
		{label: "Rent a movie", action: (*Menu).addRental, next: StateRentals},
		{label: "Update Rental", action: (*Menu).updateRental, next: StateRentals},
		{label: "Remove Rental", action: (*Menu).removeRental, next: StateRentals},
		{label: "List Rentals", action: (*Menu).listRentals, next: StateRentals},
		{label: "Return a movie", action: (*Menu).returnMovie, next: StateRentals},
		{label: "Back", next: StateMain},
	},
	StateSearch: {
		{label: "Search Clients by ID", action: (*Menu).searchClientsByID, next: StateSearch},
		{label: "Search Clients by Name", action: (*Menu).searchClientsByName, next: StateSearch},
		{label: "Search Movies by ID", action: (*Menu).searchMoviesByID, next: StateSearch},
		{label: "Search Movies by Title", action: (*Menu).searchMoviesByTitle, next: StateSearch},
		{label: "Search Movies by Description", action: (*Menu).searchMoviesByDescription, next: StateSearch},
		{label: "Search Movies by Genre", action: (*Menu).searchMoviesByGenre, next: StateSearch},
		{label: "Search Rentals by Client ID", action: (*Menu).searchRentalsByClient, next: StateSearch},
		{label: "Search Rentals by Movie ID", action: (*Menu).searchRentalsByMovie, next: StateSearch},
		{label: "Back", next: StateMain},
	},
	StateStats: {
		{label: "Most Rented Movies", action: (*Menu).mostRentedMovies, next: StateStats},
		{label: "Most Active Clients", action: (*Menu).mostActiveClients, next: StateStats},
		{label: "Late Rentals", action: (*Menu).lateRentals, next: StateStats},
		{label: "Back", next: StateMain},
	},
}

// errInputClosed ends the loop when the input runs out mid-prompt.
var errInputClosed = errors.New("input closed")

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
	noticeColor = color.New(color.FgYellow)
)

// Menu drives a Session from line based input.
type Menu struct {
	session *app.Session
	in      *bufio.Scanner
	out     io.Writer
	state   State
	log     logrus.FieldLogger
}

// NewMenu returns a Menu in the main state.
func NewMenu(session *app.Session, in io.Reader, out io.Writer, logger logrus.FieldLogger) *Menu {
	return &Menu{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		state:   StateMain,
		log:     logger.WithField("component", "ui"),
	}
}

// State returns the current menu.
func (m *Menu) State() State { return m.state }

// Run shows menus and executes commands until Exit is chosen or input ends.
func (m *Menu) Run() error {
	for m.state != StateExit {
		m.printMenu()
		line, err := m.prompt("Enter your command")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := m.Execute(line); errors.Is(err, errInputClosed) {
			return nil
		}
	}
	return nil
}

// Execute runs one command against the current state. Action errors are
// reported to the user and returned.
func (m *Menu) Execute(command string) error {
	entries := transitions[m.state]
	n, err := strconv.Atoi(strings.TrimSpace(command))
	if err != nil || n < 1 || n > len(entries) {
		errorColor.Fprintln(m.out, "Unrecognised command")
		return nil
	}

	e := entries[n-1]
	if e.action != nil {
		if err := e.action(m); err != nil {
			if !errors.Is(err, errInputClosed) {
				errorColor.Fprintln(m.out, err.Error())
				m.log.WithError(err).WithField("action", e.label).Debug("Action failed")
			}
			return err
		}
	}
	if e.next != m.state {
		m.log.WithFields(logrus.Fields{"from": m.state, "to": e.next}).Debug("Menu transition")
	}
	m.state = e.next
	return nil
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	headerColor.Fprintf(m.out, "[%s]\n", m.state)
	for i, e := range transitions[m.state] {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, e.label)
	}
}

// prompt shows label and reads one trimmed line.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// prompts reads one line per label.
func (m *Menu) prompts(labels ...string) ([]string, error) {
	out := make([]string, len(labels))
	for i, l := range labels {
		v, err := m.prompt(l)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *Menu) notice(format string, args ...any) {
	noticeColor.Fprintf(m.out, format+"\n", args...)
}

func (m *Menu) undo() error {
	ok, err := m.session.Undo()
	if err != nil {
		return err
	}
	if !ok {
		m.notice("No undos available")
	}
	return nil
}

func (m *Menu) redo() error {
	ok, err := m.session.Redo()
	if err != nil {
		return err
	}
	if !ok {
		m.notice("No redos available")
	}
	return nil
}
