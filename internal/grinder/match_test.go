package grinder_test

import (
	"testing"

	"github.com/matryer/is"

	"lesiw.io/seedgrinder/internal/grinder"
)

func TestConstraints(t *testing.T) {
	is := is.New(t)
	c := grinder.NewConstraints()
	is.Equal(c.Count(), 0)
	_, ok := c.Get(grinder.Clock)
	is.True(!ok) // fresh constraints are unconstrained

	c.Set(grinder.Arsonist, 3)
	c.Set(grinder.Case, 0)
	is.Equal(c.Count(), 2)
	v, ok := c.Get(grinder.Case)
	is.True(ok)
	is.Equal(v, uint32(0))

	c.Set(grinder.Position, 7)
	is.Equal(c.Count(), 2) // bookkeeping slots are never counted
}

func TestMatch(t *testing.T) {
	f := grinder.Fields{321, 9667, 4714, 2215, 759, 3, 16}
	tests := []struct {
		name string
		set  map[grinder.Slot]uint32
		want bool
	}{
		{"none", nil, true},
		{"arsonist", map[grinder.Slot]uint32{grinder.Arsonist: 3}, true},
		{"wrong arsonist", map[grinder.Slot]uint32{grinder.Arsonist: 2}, false},
		{"case zero", map[grinder.Slot]uint32{grinder.Case: 0}, false},
		{"all", map[grinder.Slot]uint32{
			grinder.Clock: 321, grinder.Blood: 9667, grinder.Carbon: 4714,
			grinder.Spin: 2215, grinder.Bug: 759, grinder.Arsonist: 3,
			grinder.Case: 16,
		}, true},
		{"all but one", map[grinder.Slot]uint32{
			grinder.Clock: 321, grinder.Blood: 9667, grinder.Carbon: 4714,
			grinder.Spin: 2215, grinder.Bug: 758, grinder.Arsonist: 3,
			grinder.Case: 16,
		}, false},
		{"position ignored", map[grinder.Slot]uint32{grinder.Position: 99}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := grinder.NewConstraints()
			for s, v := range tt.set {
				c.Set(s, v)
			}
			if got := c.Match(&f); got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchBatch(t *testing.T) {
	is := is.New(t)
	c := grinder.NewConstraints()
	c.Set(grinder.Clock, 610)
	c.Set(grinder.Arsonist, 6)
	fs := []grinder.Fields{
		{610, 3338, 3869, 6583, 921, 6, 15},
		{647, 7414, 3338, 2275, 687, 1, 4},
		{610, 1111, 1111, 1111, 123, 6, 0},
		{610, 1111, 1111, 1111, 123, 5, 0},
	}
	hits := make([]bool, len(fs))
	c.MatchBatch(fs, hits)
	is.Equal(hits, []bool{true, false, true, false})
	for i := range fs {
		is.Equal(hits[i], c.Match(&fs[i])) // batch and single agree
	}
}
