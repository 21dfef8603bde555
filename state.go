package ggapp

// selState encodes the process's backend decision in a single word so the
// whole of it fits one atomic slot: which backend was chosen, and whether
// the application has launched.
//
// Legal values:
//
//	0  undecided
//	1  decided software, not launched
//	2  decided hardware, not launched
//	3  launched software (terminal)
//	4  launched hardware (terminal)
//
// Values above numBackends are terminal: once stored, no further
// transition is ever applied.
type selState uint32

// stateUndecided is the initial state: no backend chosen yet.
const stateUndecided selState = 0

// numBackends is the number of known Backend values.
const numBackends = 2

// decidedState returns the decided-not-launched state for b.
func decidedState(b Backend) selState { return selState(1 + int(b)) }

// launchedState returns the terminal state for b.
func launchedState(b Backend) selState { return selState(1 + numBackends + int(b)) }

// launched reports whether s is terminal.
func (s selState) launched() bool { return s > numBackends }

// backend returns the Backend encoded in s, decided or launched.
func (s selState) backend() (Backend, bool) {
	if s == stateUndecided {
		return 0, false
	}
	return Backend((int(s) - 1) % numBackends), true
}
