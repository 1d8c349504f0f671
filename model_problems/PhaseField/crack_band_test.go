package PhaseField

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fracviz/geometry2D"
)

func TestProfile(t *testing.T) {
	cb := NewCrackBand(AT2, 2)
	assert.Equal(t, 1., cb.Profile(0))
	assert.InDelta(t, 0.36787944117, cb.Profile(cb.Ell), 1.e-10)
	assert.Equal(t, cb.Profile(-0.03), cb.Profile(0.03))

	cb.Model = AT1
	assert.Equal(t, 1., cb.Profile(0))
	assert.InDelta(t, 0.25, cb.Profile(cb.Ell), 1.e-12)
	assert.Equal(t, 0., cb.Profile(2*cb.Ell))
	assert.Equal(t, 0., cb.Profile(10))
}

func TestAmplitudeAndStrain(t *testing.T) {
	cb := NewCrackBand(AT2, 2)
	assert.Equal(t, 0., cb.Amplitude(0.25))
	assert.InDelta(t, 0.5, cb.Amplitude(0.75), 1.e-12)
	assert.Equal(t, 1., cb.Amplitude(3))

	eps, jump := cb.Strain(0.5)
	assert.Equal(t, 0.25, eps)
	assert.Zero(t, jump)
	eps, jump = cb.Strain(1.5)
	assert.Equal(t, 0.5, eps)
	assert.Equal(t, 0.5, jump)

	// The opening only moves the far side of the crack
	ux, uy := cb.DisplacementAt(0.5, 1, 1.5)
	assert.Equal(t, 0.25, ux)
	assert.InDelta(t, -0.15, uy, 1.e-12)
	ux, _ = cb.DisplacementAt(1.5, 1, 1.5)
	assert.Equal(t, 1.25, ux)
}

func TestFields(t *testing.T) {
	mesh, err := geometry2D.NewRectangleMesh(2, 1, 8, 2)
	require.NoError(t, err)
	cb := NewCrackBand(AT1, 2)

	u, err := cb.Displacement(mesh, 0.75)
	require.NoError(t, err)
	assert.Equal(t, 2, u.Len())
	assert.Len(t, u.Values, 2*mesh.NumNodes())
	assert.Same(t, mesh, u.Mesh)

	alpha, err := cb.Damage(mesh, 0.75)
	require.NoError(t, err)
	assert.True(t, u.SameMesh(alpha))
	for i, a := range alpha.Values {
		assert.GreaterOrEqual(t, a, 0.)
		assert.LessOrEqual(t, a, 0.5)
		x := mesh.Geometry.At(i, 0)
		if x == 1 {
			assert.InDelta(t, 0.5, a, 1.e-12)
		}
	}

	cd, err := cb.CellDamage(mesh, 2)
	require.NoError(t, err)
	assert.Len(t, cd.Values, mesh.NumCells())
}

func TestLoadSteps(t *testing.T) {
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, LoadSteps(4, 2))
	assert.Nil(t, LoadSteps(0, 2))
}

func TestNewModel(t *testing.T) {
	m, err := NewModel("AT1")
	require.NoError(t, err)
	assert.Equal(t, AT1, m)
	assert.Equal(t, "AT1", m.String())
	_, err = NewModel("AT3")
	assert.Error(t, err)
}
