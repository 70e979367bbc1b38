package state

// Input is the logical effect of a key press on the tab selection.
type Input int

const (
	InputIgnore Input = iota
	InputNext
	InputPrev
	InputQuit
)

func (i Input) String() string {
	switch i {
	case InputNext:
		return "next"
	case InputPrev:
		return "prev"
	case InputQuit:
		return "quit"
	default:
		return "ignore"
	}
}

// Selection is the dashboard's only mutable state: the active tab index and
// whether the loop should keep running.
type Selection struct {
	Current int
	Running bool
}

// NewSelection returns a running selection positioned at start, clamped into
// [0, n).
func NewSelection(start, n int) Selection {
	sel := Selection{Running: true}
	if n < 1 || start < 0 {
		return sel
	}
	if start >= n {
		start = n - 1
	}
	sel.Current = start
	return sel
}

// Apply returns the selection that results from in. It never mutates its
// argument, and a stopped selection is returned unchanged.
func Apply(sel Selection, n int, in Input) Selection {
	if !sel.Running || n < 1 {
		return sel
	}
	sel.Current = normalise(sel.Current, n)
	switch in {
	case InputNext:
		sel.Current = (sel.Current + 1) % n
	case InputPrev:
		sel.Current = (sel.Current + n - 1) % n
	case InputQuit:
		sel.Running = false
	}
	return sel
}

// ApplyAll folds inputs over sel in order.
func ApplyAll(sel Selection, n int, inputs ...Input) Selection {
	for _, in := range inputs {
		sel = Apply(sel, n, in)
	}
	return sel
}

func normalise(current, n int) int {
	if current >= 0 && current < n {
		return current
	}
	current %= n
	if current < 0 {
		current += n
	}
	return current
}
