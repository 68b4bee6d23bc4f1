package styledtext

import "testing"

func TestStyleStackPushPop(t *testing.T) {
	var stack styleStack

	if got := stack.Visible(); got != DefaultStyle() {
		t.Errorf("empty stack visible: got %+v", got)
	}

	bold := stack.Push(func(s *Style) { s.Bold = true })
	if !bold.Bold {
		t.Error("pushed style missing bold flag")
	}

	both := stack.Push(func(s *Style) { s.Italic = true })
	if !both.Bold || !both.Italic {
		t.Errorf("nested push should inherit: got %+v", both)
	}

	if got := stack.Pop(); !got.Bold || got.Italic {
		t.Errorf("pop should reveal previous scope: got %+v", got)
	}
	if got := stack.Pop(); got != DefaultStyle() {
		t.Errorf("final pop should reveal default: got %+v", got)
	}
}

func TestStyleStackPopEmpty(t *testing.T) {
	var stack styleStack
	if got := stack.Pop(); got != DefaultStyle() {
		t.Errorf("popping empty stack: got %+v", got)
	}
	if got := stack.Pop(); got != DefaultStyle() {
		t.Errorf("popping empty stack twice: got %+v", got)
	}
}

func TestStyleStackEntriesAreCopies(t *testing.T) {
	var stack styleStack
	first := stack.Push(func(s *Style) { s.FontSize = 10 })
	stack.Push(func(s *Style) { s.FontSize = 20 })

	if first.FontSize != 10 {
		t.Errorf("earlier value mutated: got %d", first.FontSize)
	}
	if got := stack.Pop(); got.FontSize != 10 {
		t.Errorf("popped scope mutated: got %d", got.FontSize)
	}
}
