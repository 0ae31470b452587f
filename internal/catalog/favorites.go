package catalog

import "sort"

// FavoriteSet is view-local and never persisted.
type FavoriteSet struct {
	ids map[uint]struct{}
}

func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{ids: make(map[uint]struct{})}
}

// Toggle flips membership of id and returns the new membership.
func (f *FavoriteSet) Toggle(id uint) bool {
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

func (f *FavoriteSet) Has(id uint) bool {
	_, ok := f.ids[id]
	return ok
}

func (f *FavoriteSet) Len() int {
	return len(f.ids)
}

func (f *FavoriteSet) IDs() []uint {
	out := make([]uint, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
