package ui

// Overlay is a modal view layered over the current screen. The topmost
// overlay receives input first; Dismiss names the key that closes it.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack manages the stack of open modals.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// ReplaceTop swaps the top overlay's View. Used when a modal transitions
// in place, e.g. a confirm dialog becoming a blocking error.
func (s *OverlayStack) ReplaceTop(v View) {
	if len(s.Stack) == 0 {
		return
	}
	s.Stack[len(s.Stack)-1].View = v
}
