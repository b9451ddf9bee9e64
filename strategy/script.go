package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/rs/zerolog/log"

	"pig/game"
)

// ErrScript indicates a strategy script could not be loaded or does not
// define the expected entry point.
var ErrScript = errors.New("cannot load strategy script")

// decideFunction is the global a strategy script must define. It receives
// the banked score and the turn total and returns "roll" or "hold".
const decideFunction = "decide"

// Script runs a Lua policy. The script is executed once at load time to
// define its globals; each decision then calls decide(banked, turn_total).
// A runtime error or an unrecognized return banks the turn, so a broken
// script cannot keep a game rolling forever.
type Script struct {
	path  string
	state *lua.State
}

// NewScript loads the Lua file at path and checks it defines decide.
func NewScript(path string) (*Script, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScript, err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScript, err)
	}

	state.Global(decideFunction)
	defined := state.TypeOf(-1) == lua.TypeFunction
	state.Pop(1)
	if !defined {
		return nil, fmt.Errorf("%w: %s must define decide(banked, turn_total)", ErrScript, path)
	}

	return &Script{path: path, state: state}, nil
}

func (s *Script) Decide(banked, turnTotal int) game.Decision {
	// Whatever the call leaves behind, results or an error object, the
	// stack must come back empty for the next decision.
	defer s.state.SetTop(0)

	s.state.Global(decideFunction)
	s.state.PushInteger(banked)
	s.state.PushInteger(turnTotal)

	if err := s.state.ProtectedCall(2, 1, 0); err != nil {
		log.Warn().Err(err).Str("script", s.path).Msg("decide failed, banking turn total")
		return game.Bank
	}

	answer, ok := s.state.ToString(-1)
	if !ok {
		log.Warn().Str("script", s.path).Msg("decide returned a non-string, banking turn total")
		return game.Bank
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "roll":
		return game.Continue
	case "hold":
		return game.Bank
	default:
		log.Warn().Str("script", s.path).Str("answer", answer).Msg("unknown decision, banking turn total")
		return game.Bank
	}
}
