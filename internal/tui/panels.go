package tui

import "strconv"

// panelState tracks which module accordion panels are expanded. Keys are
// derived from the module's position in the rendered list, not its id: an
// absent key means collapsed, and a refetch that reorders modules leaves
// "expanded" attached to whatever module now sits at that position.
type panelState map[string]bool

func panelKey(i int) string { return "module" + strconv.Itoa(i) }

func (p panelState) toggle(i int) {
	k := panelKey(i)
	if p[k] {
		delete(p, k)
		return
	}
	p[k] = true
}

func (p panelState) expanded(i int) bool { return p[panelKey(i)] }
