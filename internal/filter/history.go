package filter

// History is the stack of previously accepted query strings. Queries are
// pushed as each appended character is accepted and popped on
// remove-last-character, making backspace a pure cache lookup: every query
// on the stack was cached at the moment it was pushed.
type History struct {
	stack []string
}

// Push records an accepted query before it is superseded.
func (h *History) Push(query string) {
	h.stack = append(h.stack, query)
}

// Pop removes and returns the most recently accepted query. ok is false
// when the stack is empty.
func (h *History) Pop() (string, bool) {
	if len(h.stack) == 0 {
		return "", false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

// Peek returns the top of the stack without removing it.
func (h *History) Peek() (string, bool) {
	if len(h.stack) == 0 {
		return "", false
	}
	return h.stack[len(h.stack)-1], true
}

// Len reports the stack depth.
func (h *History) Len() int {
	return len(h.stack)
}

// Reset drops all recorded queries.
func (h *History) Reset() {
	h.stack = h.stack[:0]
}
