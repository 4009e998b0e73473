package ordering

import (
	"cmp"
	"slices"
)

// Key places a chapter in reading order. Volume only takes part in equality:
// a missing volume on either side never makes two keys unequal, and ordering
// looks at the chapter token alone.
type Key struct {
	Chapter   Token
	Volume    Token
	HasVolume bool
}

// NewKey builds the key for a chapter's raw labels. A chapter without a number
// (oneshots, mostly) counts as chapter 1.
func NewKey(chapter, volume *string) Key {
	key := Key{Chapter: Token{Primary: 1}}
	if chapter != nil {
		key.Chapter = Parse(*chapter)
	}
	if volume != nil {
		key.Volume = Parse(*volume)
		key.HasVolume = true
	}
	return key
}

func (k Key) Equal(o Key) bool {
	if !k.Chapter.Equal(o.Chapter) {
		return false
	}
	if !k.HasVolume || !o.HasVolume {
		return true
	}
	return k.Volume.Equal(o.Volume)
}

// Less is false for equal keys even when the volumes alone would disagree.
func (k Key) Less(o Key) bool {
	if k.Equal(o) {
		return false
	}
	return k.Chapter.Less(o.Chapter)
}

func (k Key) Greater(o Key) bool {
	if k.Equal(o) {
		return false
	}
	return k.Chapter.Greater(o.Chapter)
}

// Compare is a total order over chapter tokens that agrees with Less wherever
// Less decides. Where Less leaves two chapters unordered it puts the one
// without a part first, so "2" sorts before "2.5".
func Compare(a, b Key) int {
	if c := cmp.Compare(a.Chapter.Primary, b.Chapter.Primary); c != 0 {
		return c
	}
	switch {
	case a.Chapter.HasPart && b.Chapter.HasPart:
		return cmp.Compare(a.Chapter.Part, b.Chapter.Part)
	case a.Chapter.HasPart:
		return 1
	case b.Chapter.HasPart:
		return -1
	}
	return 0
}

// Sort puts items in reading order. Items Compare reports as equal keep their
// relative order.
func Sort[E any](items []E, key func(E) Key) {
	slices.SortStableFunc(items, func(a, b E) int {
		return Compare(key(a), key(b))
	})
}

func (k Key) String() string {
	if !k.HasVolume {
		return "Ch. " + k.Chapter.String()
	}
	return "Vol. " + k.Volume.String() + " Ch. " + k.Chapter.String()
}
