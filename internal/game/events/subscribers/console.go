package subscribers

import (
	"fmt"
	"io"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events"
)

// ConsoleSubscriber writes board renderings and rook moves as plain text
type ConsoleSubscriber struct {
	id         string
	out        io.Writer
	showBoards bool
}

// NewConsoleSubscriber creates a subscriber writing to out. When showBoards
// is false only move descriptions are written.
func NewConsoleSubscriber(id string, out io.Writer, showBoards bool) *ConsoleSubscriber {
	return &ConsoleSubscriber{id: id, out: out, showBoards: showBoards}
}

func (cs *ConsoleSubscriber) ID() string { return cs.id }

func (cs *ConsoleSubscriber) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeRookMoved:
		return true
	case events.TypeBoardRendered:
		return cs.showBoards
	}
	return false
}

func (cs *ConsoleSubscriber) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case *events.BoardRenderedEvent:
		fmt.Fprintln(cs.out, e.Text())
	case *events.RookMovedEvent:
		fmt.Fprintln(cs.out, e.Description())
	}
}
