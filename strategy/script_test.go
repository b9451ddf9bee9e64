package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pig/game"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strategy.lua")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestScriptDecide(t *testing.T) {
	const holdAt20 = `
function decide(banked, turn_total)
  if banked + turn_total >= 100 then
    return "hold"
  end
  if turn_total >= 20 then
    return "hold"
  end
  return "roll"
end
`
	script, err := NewScript(writeScript(t, holdAt20))
	require.NoError(t, err)

	t.Run("should follow the scripted rule", func(t *testing.T) {
		require.Equal(t, game.Continue, script.Decide(0, 19))
		require.Equal(t, game.Bank, script.Decide(0, 20))
		require.Equal(t, game.Bank, script.Decide(95, 5))
	})

	t.Run("should keep state across decisions", func(t *testing.T) {
		require.Equal(t, game.Continue, script.Decide(10, 4))
		require.Equal(t, game.Bank, script.Decide(10, 26))
	})
}

func TestScriptDecideFailures(t *testing.T) {
	t.Run("should bank on a runtime error", func(t *testing.T) {
		script, err := NewScript(writeScript(t, `
function decide(banked, turn_total)
  error("boom")
end
`))
		require.NoError(t, err)

		require.Equal(t, game.Bank, script.Decide(0, 10))
	})

	t.Run("should bank on a non-string return", func(t *testing.T) {
		script, err := NewScript(writeScript(t, `
function decide(banked, turn_total)
  return nil
end
`))
		require.NoError(t, err)

		require.Equal(t, game.Bank, script.Decide(0, 10))
	})

	t.Run("should bank on an unknown answer", func(t *testing.T) {
		script, err := NewScript(writeScript(t, `
function decide(banked, turn_total)
  return "maybe"
end
`))
		require.NoError(t, err)

		require.Equal(t, game.Bank, script.Decide(0, 10))
	})
}

func TestNewScriptErrors(t *testing.T) {
	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := NewScript(filepath.Join(t.TempDir(), "missing.lua"))

		require.ErrorIs(t, err, ErrScript)
	})

	t.Run("should fail on a syntax error", func(t *testing.T) {
		_, err := NewScript(writeScript(t, `function decide(`))

		require.ErrorIs(t, err, ErrScript)
	})

	t.Run("should fail without a decide function", func(t *testing.T) {
		_, err := NewScript(writeScript(t, `x = 1`))

		require.ErrorIs(t, err, ErrScript)
	})

	t.Run("should fail when decide is not a function", func(t *testing.T) {
		_, err := NewScript(writeScript(t, `decide = 42`))

		require.ErrorIs(t, err, ErrScript)
	})
}
