package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"pig/game"
)

// Interactive prompts a human for every decision. Only the exact word
// "hold" (case-insensitive, surrounding whitespace ignored) banks; any
// other answer keeps rolling. A failed read banks so a closed input cannot
// leave the game spinning.
type Interactive struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewInteractive returns a prompt-driven strategy for the named player,
// reading answers from in and writing prompts to out. Players answering on
// the same stream must be handed the same *bufio.Reader, or one player's
// buffering swallows the lines meant for the others.
func NewInteractive(name string, in io.Reader, out io.Writer) *Interactive {
	return &Interactive{name: name, in: bufio.NewReader(in), out: out}
}

func (i *Interactive) Decide(banked, turnTotal int) game.Decision {
	fmt.Fprintf(i.out, "%s, roll again or hold? ", i.name)

	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		log.Warn().Err(err).Str("player", i.name).Msg("input closed, banking turn total")
		return game.Bank
	}

	if strings.EqualFold(strings.TrimSpace(line), "hold") {
		return game.Bank
	}
	return game.Continue
}
