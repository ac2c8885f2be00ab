package main

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/cmd/snake/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
