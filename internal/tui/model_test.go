package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptrouter/internal/router"
	"promptrouter/internal/services"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(services.NewRouterService(router.Default()))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyMsg(key tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: key}
}

func TestClassifyKey(t *testing.T) {
	m := newTestModel(t)
	m.textarea.SetValue("Bitte transkribiere diese Sprachnachricht")

	updated, _ := m.Update(keyMsg(tea.KeyCtrlE))
	m = updated.(Model)

	assert.Contains(t, m.lastResult, "GPT-4o")
	assert.Contains(t, m.viewport.View(), "Recommended model")
	assert.Contains(t, m.status, "GPT-4o")
}

func TestClassifyKey_EmptyInputBlocked(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg(tea.KeyCtrlE))
	m = updated.(Model)

	// Nothing reached the classifier; only the status notice changed.
	assert.Empty(t, m.lastResult)
	assert.Contains(t, m.status, "Enter a prompt first")
}

func TestCopyResult(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	m := newTestModel(t)

	// Copying before any classification is a guarded no-op.
	updated, _ := m.Update(keyMsg(tea.KeyCtrlY))
	m = updated.(Model)
	assert.Empty(t, copied)
	assert.Contains(t, m.status, "No result to copy")

	m.textarea.SetValue("tl;dr bitte")
	updated, _ = m.Update(keyMsg(tea.KeyCtrlE))
	m = updated.(Model)

	updated, _ = m.Update(keyMsg(tea.KeyCtrlY))
	m = updated.(Model)
	require.NotEmpty(t, copied)
	assert.Equal(t, m.lastResult, copied)
	assert.Contains(t, copied, "o4-mini")
}

func TestCopyInput(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	m := newTestModel(t)

	updated, _ := m.Update(keyMsg(tea.KeyCtrlU))
	m = updated.(Model)
	assert.Empty(t, copied)
	assert.Contains(t, m.status, "No input to copy")

	m.textarea.SetValue("refactor this function")
	updated, _ = m.Update(keyMsg(tea.KeyCtrlU))
	m = updated.(Model)
	assert.Equal(t, "refactor this function", copied)
}

func TestClearKey(t *testing.T) {
	m := newTestModel(t)
	m.textarea.SetValue("tl;dr bitte")

	updated, _ := m.Update(keyMsg(tea.KeyCtrlE))
	m = updated.(Model)
	require.NotEmpty(t, m.lastResult)

	updated, _ = m.Update(keyMsg(tea.KeyCtrlL))
	m = updated.(Model)

	assert.Empty(t, m.textarea.Value())
	assert.Empty(t, m.lastResult)
	assert.Contains(t, m.viewport.View(), "No recommendation yet")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(keyMsg(key))
		require.NotNil(t, cmd, "key %v must quit", key)
	}
}
