package ui

// ViewStack is the navigation container of one tab. It holds the tab's root
// view; the top of the stack receives the tab's input.
type ViewStack struct {
	Stack []View
}

// NewViewStack creates a stack rooted at root.
func NewViewStack(root View) *ViewStack {
	return &ViewStack{Stack: []View{root}}
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// ReplaceTop swaps the top view for v, as returned from View.Update.
func (s *ViewStack) ReplaceTop(v View) {
	if len(s.Stack) == 0 || v == nil {
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Root returns the bottom view.
func (s *ViewStack) Root() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[0]
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
