package styledtext

// styleStack tracks the combined style implied by currently open markup.
// Entries are plain values: every segment carries its own copy, so the
// stack never shares ownership with the output chain.
type styleStack struct {
	entries []Style
}

// Visible returns the style currently in scope: a copy of the top entry,
// or the default style when nothing is open.
func (s *styleStack) Visible() Style {
	if len(s.entries) == 0 {
		return DefaultStyle()
	}
	return s.entries[len(s.entries)-1]
}

// Push duplicates the visible style, applies modify to the duplicate and
// makes it the new top. The result is the style for the next segment.
func (s *styleStack) Push(modify func(*Style)) Style {
	st := s.Visible()
	if modify != nil {
		modify(&st)
	}
	s.entries = append(s.entries, st)
	return st
}

// Pop discards the top entry and returns the newly visible style. Popping
// an empty stack is allowed and yields the default style, tolerating
// unbalanced closing tags.
func (s *styleStack) Pop() Style {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return s.Visible()
}
