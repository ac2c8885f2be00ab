package highscore_test

import (
	"testing"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/highscore/testsuite"
)

func TestInMemStore(t *testing.T) {
	testsuite.Suite(t, highscore.InMemStore(), nil)
}

func TestInstrumentedStore(t *testing.T) {
	testsuite.Suite(t, highscore.InstrumentStore(highscore.InMemStore()), nil)
}
