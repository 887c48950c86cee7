package ui

// FocusManager tracks which tab is selected and rotates through them.
type FocusManager struct {
	Current  string   // ID of the selected tab
	Order    []string // rotation order
	OnChange func(from, to string)
}

// Index returns the position of Current in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next selects the following tab, wrapping at the end.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev selects the preceding tab, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.Index()
	if idx < 0 {
		idx = 0
		delta = 0
	}
	f.set(f.Order[(idx+delta+n)%n])
	return f.Current
}

// SetFocus selects id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
