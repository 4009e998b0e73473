package ordering

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKey(t *testing.T) {
	key := NewKey(nil, nil)
	assert.Equal(t, Token{Primary: 1}, key.Chapter)
	assert.False(t, key.HasVolume)

	key = NewKey(strPtr("4.5"), strPtr("2"))
	assert.Equal(t, Token{Primary: 4, Part: 5, HasPart: true}, key.Chapter)
	assert.Equal(t, Token{Primary: 2}, key.Volume)
	assert.True(t, key.HasVolume)

	key = NewKey(strPtr("Extra"), nil)
	assert.Equal(t, Token{Primary: 1}, key.Chapter)
}

func TestKeyMissingVolumeIsWildcard(t *testing.T) {
	noVolume := NewKey(strPtr("5"), nil)
	volumeOne := NewKey(strPtr("5"), strPtr("1"))
	volumeTwo := NewKey(strPtr("5"), strPtr("2"))

	assert.True(t, noVolume.Equal(volumeOne))
	assert.True(t, noVolume.Equal(volumeTwo))
	assert.False(t, noVolume.Less(volumeTwo))
	assert.False(t, noVolume.Greater(volumeTwo))
	assert.False(t, volumeOne.Less(noVolume))

	// volumes differ, so the keys are not equal, but order ignores volumes
	assert.False(t, volumeOne.Equal(volumeTwo))
	assert.False(t, volumeOne.Less(volumeTwo))
	assert.False(t, volumeTwo.Greater(volumeOne))
}

func TestKeyOrdersByChapterOnly(t *testing.T) {
	early := NewKey(strPtr("3"), strPtr("9"))
	late := NewKey(strPtr("4"), strPtr("1"))

	assert.True(t, early.Less(late))
	assert.True(t, late.Greater(early))
	assert.False(t, late.Less(early))
	assert.False(t, early.Equal(late))
}

func TestKeyEqualityPrecedesOrdering(t *testing.T) {
	a := NewKey(strPtr("7"), nil)
	b := NewKey(strPtr("7.5"), strPtr("2"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestCompareAgreesWithLess(t *testing.T) {
	labels := []*string{nil, strPtr("1"), strPtr("2"), strPtr("2.5"), strPtr("2b"), strPtr("10"), strPtr("x")}
	volumes := []*string{nil, strPtr("1"), strPtr("2")}
	var keys []Key
	for _, l := range labels {
		for _, v := range volumes {
			keys = append(keys, NewKey(l, v))
		}
	}
	for _, a := range keys {
		for _, b := range keys {
			if a.Less(b) {
				assert.Negative(t, Compare(a, b), "%s < %s", a, b)
			}
			if a.Greater(b) {
				assert.Positive(t, Compare(a, b), "%s > %s", a, b)
			}
			assert.Equal(t, Compare(a, b), -Compare(b, a))
		}
	}
}

type chapter struct {
	number *string
	volume *string
}

func TestSortReadingOrder(t *testing.T) {
	ordered := []chapter{
		{strPtr("1"), strPtr("1")},
		{strPtr("2"), nil},
		{strPtr("2.5"), strPtr("3")},
		{strPtr("3"), strPtr("1")},
		{strPtr("10"), nil},
	}
	for i := 0; i < 20; i++ {
		shuffled := append([]chapter(nil), ordered...)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		Sort(shuffled, func(c chapter) Key { return NewKey(c.number, c.volume) })
		assert.Equal(t, ordered, shuffled)
	}
}

func TestSortIsStableForTies(t *testing.T) {
	items := []chapter{
		{strPtr("5"), strPtr("2")},
		{strPtr("5"), strPtr("1")},
		{strPtr("4"), nil},
	}
	Sort(items, func(c chapter) Key { return NewKey(c.number, c.volume) })
	assert.Equal(t, "4", *items[0].number)
	assert.Equal(t, "2", *items[1].volume)
	assert.Equal(t, "1", *items[2].volume)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Ch. 1", NewKey(nil, nil).String())
	assert.Equal(t, "Vol. 2 Ch. 12.5", NewKey(strPtr("12.5"), strPtr("2")).String())
}
