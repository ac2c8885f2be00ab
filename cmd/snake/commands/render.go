package commands

import (
	"fmt"
	"math/rand"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/session"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow

	// Each board cell is two terminal columns wide so the grid looks square.
	cellWidth = 2
	left      = 4
	top       = 2
)

var headRunes = map[rules.Direction]rune{
	rules.DirectionUp:    '▲',
	rules.DirectionDown:  '▼',
	rules.DirectionLeft:  '◀',
	rules.DirectionRight: '▶',
}

func render(frame session.Frame) error {
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	g := frame.Game
	width := int(g.TileCount) * cellWidth
	bottom := top + int(g.TileCount) + 1

	renderTitle(g, frame.HighScore)
	renderBoard(width, bottom)
	renderFood(g.Food)
	renderSnake(g)
	renderStatus(frame, width, bottom)

	return termbox.Flush()
}

func renderTitle(g rules.Snapshot, highScore int64) {
	tbprint(left, top-1, defaultColor, defaultColor,
		fmt.Sprintf("Snake! - Score %d  High Score %d  Turn %d", g.Score, highScore, g.Turn))
}

func renderSnake(g rules.Snapshot) {
	for i, b := range g.Snake {
		x, y := cellPos(b)
		if i == 0 {
			termbox.SetCell(x, y, headRunes[g.Direction], termbox.ColorBlack, headColor)
			termbox.SetCell(x+1, y, ' ', headColor, headColor)
			continue
		}
		fill(x, y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: snakeColor, Bg: snakeColor})
	}
}

func renderFood(food rules.Point) {
	x, y := cellPos(food)
	termbox.SetCell(x, y, getFoodEmoji(food), defaultColor, bgColor)
}

func cellPos(p rules.Point) (int, int) {
	return left + int(p.X)*cellWidth, top + int(p.Y) + 1
}

var foods = map[rules.Point]rune{}

func getFoodEmoji(p rules.Point) rune {
	r, ok := foods[p]
	if !ok {
		r = randomFoodEmoji()
		foods[p] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍎',
		'🍑',
		'🍇',
		'🍐',
		'🍌',
		'🍓',
		'🍉',
	}

	return f[rand.Intn(len(f))]
}

func renderBoard(width, bottom int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderStatus(frame session.Frame, width, bottom int) {
	midY := top + (bottom-top)/2
	switch frame.Game.Phase {
	case rules.PhaseIdle:
		tbprint(left, bottom+1, defaultColor, defaultColor, "Enter: start  Arrows/WASD: steer  Space: pause  R: reset  Esc: quit")
	case rules.PhasePaused:
		centered(width, midY, termbox.ColorWhite|termbox.AttrBold, "PAUSED")
	case rules.PhaseOver:
		centered(width, midY, termbox.ColorRed|termbox.AttrBold, "GAME OVER")
		centered(width, midY+1, defaultColor, fmt.Sprintf("Final score %d (%s)", frame.Game.Score, frame.Outcome))
		tbprint(left, bottom+1, defaultColor, defaultColor, "Enter: play again  Esc: quit")
	}
}

func centered(width, y int, fg termbox.Attribute, msg string) {
	x := left + (width-runewidth.StringWidth(msg))/2
	tbprint(x, y, fg, defaultColor, msg)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
