package projection

// ViewportID names a render surface. PrimaryViewport is the game window.
type ViewportID uint32

const PrimaryViewport ViewportID = 1

// ViewportLookup resolves a viewport id to its current size.
type ViewportLookup interface {
	Size(id ViewportID) (Size, bool)
}

// Viewports is the registry the windowing layer keeps current.
type Viewports struct {
	sizes map[ViewportID]Size
}

func NewViewports() *Viewports {
	return &Viewports{sizes: make(map[ViewportID]Size)}
}

func (v *Viewports) Set(id ViewportID, size Size) {
	if v.sizes == nil {
		v.sizes = make(map[ViewportID]Size)
	}
	v.sizes[id] = size
}

func (v *Viewports) Remove(id ViewportID) {
	delete(v.sizes, id)
}

func (v *Viewports) Size(id ViewportID) (Size, bool) {
	if v == nil {
		return Size{}, false
	}
	s, ok := v.sizes[id]
	return s, ok
}
