package engine

// WorldList stores the objects that make up a scene in insertion order
type WorldList struct {
	objects []Object
}

// NewWorldList creates an empty world list
func NewWorldList() *WorldList {
	return &WorldList{}
}

// Append adds an object to the end of the list
func (wl *WorldList) Append(obj Object) {
	if obj == nil {
		return
	}
	wl.objects = append(wl.objects, obj)
}

// Objects returns the objects in insertion order. The slice must not be modified.
func (wl *WorldList) Objects() []Object {
	return wl.objects
}

// Len returns the number of objects
func (wl *WorldList) Len() int {
	return len(wl.objects)
}

// Find returns the first object with the given label
func (wl *WorldList) Find(label string) (Object, bool) {
	for _, obj := range wl.objects {
		if obj.Label() == label {
			return obj, true
		}
	}
	return nil, false
}

// Contains reports whether obj is in the list
func (wl *WorldList) Contains(obj Object) bool {
	for _, o := range wl.objects {
		if o == obj {
			return true
		}
	}
	return false
}
