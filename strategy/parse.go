package strategy

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pig/game"
)

// ErrUnknownStrategy indicates a player tag that matches no known policy.
var ErrUnknownStrategy = errors.New("unknown player type")

// Parse builds the policy named by tag: "human", "computer", "hold:<k>" or
// "script:<path>". The reader and writer are used only by the interactive
// policy, for its prompts.
func Parse(tag, name string, in io.Reader, out io.Writer) (game.Strategy, error) {
	kind, arg, hasArg := strings.Cut(tag, ":")
	switch kind {
	case "human":
		if hasArg {
			return nil, fmt.Errorf("%w %q: human takes no argument", ErrUnknownStrategy, tag)
		}
		return NewInteractive(name, in, out), nil
	case "computer":
		if hasArg {
			return nil, fmt.Errorf("%w %q: computer takes no argument", ErrUnknownStrategy, tag)
		}
		return NewHold(), nil
	case "hold":
		k, err := strconv.Atoi(arg)
		if err != nil || k <= 0 {
			return nil, fmt.Errorf("%w: hold point %q must be a positive integer", ErrUnknownStrategy, arg)
		}
		return NewHoldAt(k), nil
	case "script":
		if arg == "" {
			return nil, fmt.Errorf("%w: script needs a file, e.g. script:strategy.lua", ErrUnknownStrategy)
		}
		return NewScript(arg)
	default:
		return nil, fmt.Errorf("%w %q: use human, computer, hold:<k> or script:<path>", ErrUnknownStrategy, tag)
	}
}
