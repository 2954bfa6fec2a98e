package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spacefolio/vmath"
)

func newDefaultTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(DefaultLandmarks())
	require.NoError(t, err)
	return tr
}

func TestDefaultLandmarks(t *testing.T) {
	ls := DefaultLandmarks()
	require.Len(t, ls, 4)

	assert.Equal(t, "about", ls[0].ID)
	assert.Equal(t, vmath.V3F(0, 0, -60), ls[0].Position)
	assert.Equal(t, 70.0, ls[0].CardRadius)
	assert.Equal(t, vmath.V3F(20, 10, -170), ls[3].Position)
	for _, l := range ls {
		assert.Equal(t, 15.0, l.ActivationRadius)
	}
}

func TestNearest(t *testing.T) {
	tr := newDefaultTracker(t)

	tests := []struct {
		name string
		pos  vmath.Vec3F
		want string
	}{
		{"at spawn", vmath.V3F(0, 0, 0), ""},
		{"inside about", vmath.V3F(0, 0, -55), "about"},
		{"on the boundary", vmath.V3F(0, 0, -45), ""},
		{"just inside boundary", vmath.V3F(0, 0, -45.001), "about"},
		{"inside projects", vmath.V3F(30, 0, -95), "projects"},
		{"inside contact", vmath.V3F(20, 10, -170), "contact"},
		{"between stations", vmath.V3F(0, 0, -100), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Nearest(tt.pos))
		})
	}
}

func TestNearest_PicksMinimumAndFirstOnTie(t *testing.T) {
	tr, err := NewTracker([]Landmark{
		{ID: "a", Position: vmath.V3F(-5, 0, 0), ActivationRadius: 15},
		{ID: "b", Position: vmath.V3F(5, 0, 0), ActivationRadius: 15},
	})
	require.NoError(t, err)

	assert.Equal(t, "a", tr.Nearest(vmath.V3F(0, 0, 0)))
	assert.Equal(t, "b", tr.Nearest(vmath.V3F(1, 0, 0)))
}

func TestUpdate_ReportsChanges(t *testing.T) {
	tr := newDefaultTracker(t)

	id, changed := tr.Update(vmath.V3F(0, 0, 0))
	assert.Equal(t, "", id)
	assert.False(t, changed)

	id, changed = tr.Update(vmath.V3F(0, 0, -55))
	assert.Equal(t, "about", id)
	assert.True(t, changed)

	_, changed = tr.Update(vmath.V3F(0, 1, -56))
	assert.False(t, changed)

	id, changed = tr.Update(vmath.V3F(0, 0, 0))
	assert.Equal(t, "", id)
	assert.True(t, changed)
	assert.Equal(t, "", tr.Nearby())
}

func TestVisibleCards(t *testing.T) {
	tr := newDefaultTracker(t)

	assert.Equal(t, []string{"about"}, tr.VisibleCards(vmath.V3F(0, 0, 0)))
	assert.Len(t, tr.VisibleCards(vmath.V3F(0, 0, -100)), 4)
	assert.Empty(t, tr.VisibleCards(vmath.V3F(0, 0, 500)))
}

func TestLandmarkLookup(t *testing.T) {
	tr := newDefaultTracker(t)

	l, err := tr.Landmark("skills")
	require.NoError(t, err)
	assert.Equal(t, "Skills", l.Title)

	_, err = tr.Landmark("missing")
	assert.ErrorIs(t, err, ErrUnknownLandmark)
}

func TestNewTracker_Rejects(t *testing.T) {
	_, err := NewTracker([]Landmark{
		{ID: "a", ActivationRadius: 15},
		{ID: "a", ActivationRadius: 15},
	})
	assert.ErrorIs(t, err, ErrDuplicateLandmark)

	_, err = NewTracker([]Landmark{{ID: "a"}})
	assert.ErrorIs(t, err, ErrInvalidLandmark)

	_, err = NewTracker([]Landmark{{ActivationRadius: 15}})
	assert.ErrorIs(t, err, ErrInvalidLandmark)
}

func TestProgression(t *testing.T) {
	p := NewProgression(0, 0)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 1, p.Level)

	var ups int
	prevXP := 0
	for i := 0; i < 10; i++ {
		if p.Grant() {
			ups++
		}
		require.Greater(t, p.Experience, prevXP)
		prevXP = p.Experience
		assert.Equal(t, p.Experience/100+1, p.Level)
	}
	assert.Equal(t, 250, p.Experience)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 2, ups)
}
