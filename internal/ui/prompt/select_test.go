package prompt

import (
	"testing"

	"charm.land/bubbles/v2/list"
)

func testSelectModel(options ...string) selectModel {
	items := make([]list.Item, len(options))
	for i, label := range options {
		items[i] = option{label: label, index: i}
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	return selectModel{
		list:   list.New(items, delegate, 48, len(options)+5),
		chosen: -1,
	}
}

func TestSelectModel_EnterPicksHighlighted(t *testing.T) {
	t.Parallel()

	m := testSelectModel("bash", "zsh", "powershell")

	updated, _ := m.Update(keyPress("enter"))
	um := updated.(selectModel)

	if !um.done {
		t.Error("done = false after enter")
	}
	if um.cancelled {
		t.Error("cancelled = true after enter")
	}
	if um.chosen != 0 {
		t.Errorf("chosen = %d, want 0 (first option highlighted by default)", um.chosen)
	}
}

func TestSelectModel_EscCancels(t *testing.T) {
	t.Parallel()

	m := testSelectModel("bash", "zsh")

	updated, _ := m.Update(keyPress("esc"))
	um := updated.(selectModel)

	if !um.cancelled {
		t.Error("cancelled = false after esc")
	}
	if um.chosen != -1 {
		t.Errorf("chosen = %d after cancel, want -1", um.chosen)
	}
}
