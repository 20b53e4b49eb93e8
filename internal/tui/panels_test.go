package tui

import "testing"

func TestPanelToggle(t *testing.T) {
	t.Parallel()

	p := panelState{}
	if p.expanded(0) {
		t.Fatalf("fresh panel expanded")
	}

	p.toggle(0)
	if !p.expanded(0) {
		t.Fatalf("toggle did not expand")
	}
	if p.expanded(1) {
		t.Fatalf("toggle leaked to neighbor")
	}

	p.toggle(0)
	if p.expanded(0) {
		t.Fatalf("second toggle did not collapse")
	}
	if len(p) != 0 {
		t.Fatalf("collapsed key not removed: %v", p)
	}
}

func TestPanelsAreIndependent(t *testing.T) {
	t.Parallel()

	p := panelState{}
	p.toggle(0)
	p.toggle(2)

	if !p.expanded(0) || !p.expanded(2) || p.expanded(1) {
		t.Fatalf("panel state = %v", p)
	}
}

func TestPanelKeysArePositional(t *testing.T) {
	t.Parallel()

	// Expansion is keyed by list position, so state persists across a refetch
	// and attaches to whichever module occupies the position afterwards.
	p := panelState{}
	p.toggle(1)
	if !p.expanded(1) {
		t.Fatalf("position 1 not expanded")
	}
	if panelKey(1) != "module1" {
		t.Fatalf("panelKey(1) = %q", panelKey(1))
	}
}
