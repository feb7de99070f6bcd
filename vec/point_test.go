package vec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zappem.net/pub/kinematics/scan/angle"
)

func TestPointBasics(t *testing.T) {
	o := Origin[um]()
	assert.Equal(t, [3]float64{0, 0, 0}, o.Vector().Components())

	p := NewPoint[um](1, 2, 3)
	q := NewPoint[um](4, 6, 3)
	d := q.Sub(p)
	assert.Equal(t, [3]float64{3, 4, 0}, d.Components())
	assert.Equal(t, 5.0, q.Distance(p))
	assert.True(t, p.Add(d).Equals(q))
	assert.Equal(t, "[1, 2, 3]um", p.String())
	assert.Equal(t, 1.0, p.X())
	assert.Equal(t, 2.0, p.Y())
	assert.Equal(t, 3.0, p.Z())
}

func TestPointSpherical(t *testing.T) {
	p := NewPoint[um](0, 2, 0)
	assert.InDelta(t, 2, p.Radius(), 1e-12)
	assert.InDelta(t, 90, p.Azimuth().Degrees(), 1e-9)
	incl, err := p.Inclination()
	require.NoError(t, err)
	assert.InDelta(t, 90, incl.Degrees(), 1e-9)

	_, err = Origin[um]().Inclination()
	assert.ErrorIs(t, err, ErrZeroMagnitude)
	_, err = Origin[um]().WithRadius(1)
	assert.ErrorIs(t, err, ErrZeroMagnitude)
}

func TestWithRadius(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		p := NewPoint[um](rnd.Float64()*200-100, rnd.Float64()*200-100, rnd.Float64()*200-100)
		r := rnd.Float64() * 50
		inclP, err := p.Inclination()
		require.NoError(t, err)

		q, err := p.WithRadius(r + 0.1)
		require.NoError(t, err)
		assert.InDelta(t, r+0.1, q.Radius(), 1e-9)

		inclQ, err := q.Inclination()
		require.NoError(t, err)
		assert.InDelta(t, inclP.Radians(), inclQ.Radians(), 1e-9)
		assert.InDelta(t, p.Azimuth().Radians(), q.Azimuth().Radians(), 1e-9)
	}
}

func TestWithAngles(t *testing.T) {
	p := NewPoint[um](1, 0, 0)

	q, err := p.WithAzimuth(angle.FromDegrees(90))
	require.NoError(t, err)
	assert.True(t, q.Equals(NewPoint[um](0, 1, 0)), "got %v", q)

	q, err = p.WithInclination(angle.FromDegrees(0))
	require.NoError(t, err)
	assert.True(t, q.Equals(NewPoint[um](0, 0, 1)), "got %v", q)

	q, err = NewPoint[um](0, 0, 3).WithInclination(angle.FromRadians(math.Pi / 2))
	require.NoError(t, err)
	assert.InDelta(t, 3, q.X(), 1e-9)
	assert.InDelta(t, 0, q.Z(), 1e-9)

	_, err = Origin[um]().WithAzimuth(angle.FromDegrees(10))
	assert.ErrorIs(t, err, ErrZeroMagnitude)
}

func TestPointMapping(t *testing.T) {
	p := NewPoint[Millimetre](1, 2, 3)
	q := NewPoint[Millimetre](3, 2, 1)

	assert.Equal(t, [3]float64{2, 4, 6}, p.Map(func(c float64) float64 { return 2 * c }).Vector().Components())
	mid := p.Map2(q, func(a, b float64) float64 { return (a + b) / 2 })
	assert.Equal(t, [3]float64{2, 2, 2}, mid.Vector().Components())
	assert.Equal(t, [3]float64{1, 3, 5}, p.Mapi(func(i int, c float64) float64 { return c + float64(i) }).Vector().Components())
	assert.Equal(t, [3]float64{3, 4, 1}, p.Mapi2(q, func(i int, a, b float64) float64 {
		if i == 1 {
			return a + b
		}
		return b
	}).Vector().Components())
	flat := p.MapEach(
		func(c float64) float64 { return c },
		func(c float64) float64 { return c },
		func(float64) float64 { return 0 },
	)
	assert.Equal(t, [3]float64{1, 2, 0}, flat.Vector().Components())
}
