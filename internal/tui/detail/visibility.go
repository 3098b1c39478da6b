package detail

// BodyVisibility maps a row index to whether its body is shown.
// The zero value is ready to use; all rows start hidden.
type BodyVisibility struct {
	visible map[int]bool
}

// NewBodyVisibility returns an empty visibility map.
func NewBodyVisibility() *BodyVisibility {
	return &BodyVisibility{}
}

// Toggle flips the visibility of row index and returns the new state.
func (v *BodyVisibility) Toggle(index int) bool {
	if v.visible == nil {
		v.visible = make(map[int]bool)
	}
	v.visible[index] = !v.visible[index]
	return v.visible[index]
}

// IsVisible reports whether row index shows its body.
func (v *BodyVisibility) IsVisible(index int) bool {
	return v.visible[index]
}

// Known reports whether row index has ever been toggled.
func (v *BodyVisibility) Known(index int) bool {
	_, ok := v.visible[index]
	return ok
}

// Len returns the number of rows that have been toggled at least once.
func (v *BodyVisibility) Len() int {
	return len(v.visible)
}
