package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yackko/sez2ecef/internal/input"
	"github.com/yackko/sez2ecef/types"
)

func typeText(m FormModel, s string) FormModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(FormModel)
}

func press(m FormModel, k tea.KeyType) FormModel {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(FormModel)
}

func fill(m FormModel, values ...string) FormModel {
	for i, v := range values {
		m = typeText(m, v)
		if i < len(values)-1 {
			m = press(m, tea.KeyTab)
		}
	}
	return m
}

func TestFormModel_FocusNavigation(t *testing.T) {
	m := NewFormModel(nil)
	assert.Equal(t, 0, m.Focused())

	m = press(m, tea.KeyTab)
	assert.Equal(t, 1, m.Focused())

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyEnter)
	assert.Equal(t, 3, m.Focused())

	m = press(m, tea.KeyShiftTab)
	assert.Equal(t, 2, m.Focused())

	// Wraps around in both directions.
	m = press(m, tea.KeyUp)
	m = press(m, tea.KeyUp)
	m = press(m, tea.KeyUp)
	assert.Equal(t, 5, m.Focused())
	m = press(m, tea.KeyTab)
	assert.Equal(t, 0, m.Focused())
}

func TestFormModel_ConvertsWhenComplete(t *testing.T) {
	m := NewFormModel(nil)
	m = fill(m, "0", "0", "0", "0", "0")

	_, ok := m.Result()
	assert.False(t, ok, "five fields are not enough")
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Enter all six values.")

	m = press(m, tea.KeyTab)
	m = typeText(m, "1")

	got, ok := m.Result()
	require.True(t, ok)
	assert.InDelta(t, 6379.1363, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
	assert.InDelta(t, 0, got.Z, 1e-9)
	assert.Contains(t, m.View(), "6379.1363")
}

func TestFormModel_InvalidValue(t *testing.T) {
	m := NewFormModel(nil)
	m = fill(m, "0", "0", "0", "0", "x", "0")

	_, ok := m.Result()
	assert.False(t, ok)

	var argErr *input.ArgumentError
	require.True(t, errors.As(m.Err(), &argErr))
	assert.Equal(t, "e_km", argErr.Name)
	assert.Contains(t, m.View(), "invalid numeric argument e_km")

	// Fixing the field clears the error.
	m = press(m, tea.KeyShiftTab)
	m = press(m, tea.KeyBackspace)
	m = typeText(m, "2")

	got, ok := m.Result()
	require.True(t, ok)
	assert.NoError(t, m.Err())
	assert.Equal(t, types.ECEF{X: 6378.1363, Y: 2, Z: 0}, got)
}

func TestFormModel_Quit(t *testing.T) {
	m := NewFormModel(nil)
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
