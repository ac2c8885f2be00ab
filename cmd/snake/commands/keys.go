package commands

import (
	"unicode"

	"github.com/battlesnakeio/arcade/rules"
	termbox "github.com/nsf/termbox-go"
)

type intent int

const (
	intentNone intent = iota
	intentDirection
	intentPause
	intentStart
	intentReset
	intentQuit
)

var directionKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.DirectionUp,
	termbox.KeyArrowDown:  rules.DirectionDown,
	termbox.KeyArrowLeft:  rules.DirectionLeft,
	termbox.KeyArrowRight: rules.DirectionRight,
}

var directionRunes = map[rune]rules.Direction{
	'w': rules.DirectionUp,
	's': rules.DirectionDown,
	'a': rules.DirectionLeft,
	'd': rules.DirectionRight,
}

// intentForKey maps a key press to what the player wants. Letters are
// matched case-insensitively.
func intentForKey(ev termbox.Event) (intent, rules.Direction) {
	if ev.Type != termbox.EventKey {
		return intentNone, ""
	}
	if d, ok := directionKeys[ev.Key]; ok {
		return intentDirection, d
	}

	switch ev.Key {
	case termbox.KeySpace:
		return intentPause, ""
	case termbox.KeyEnter:
		return intentStart, ""
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return intentQuit, ""
	}

	ch := unicode.ToLower(ev.Ch)
	if d, ok := directionRunes[ch]; ok {
		return intentDirection, d
	}
	switch ch {
	case ' ':
		return intentPause, ""
	case 'r':
		return intentReset, ""
	case 'q':
		return intentQuit, ""
	}
	return intentNone, ""
}
