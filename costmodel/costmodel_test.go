package costmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tedkit/costmodel"
)

func TestUnit(t *testing.T) {
	u := costmodel.NewUnit()
	assert.Equal(t, 1.0, u.Del(5))
	assert.Equal(t, 1.0, u.Ins(5))
	assert.Equal(t, 0.0, u.Ren(3, 3))
	assert.Equal(t, 1.0, u.Ren(3, 4))
}

func TestWeighted_Defaults(t *testing.T) {
	w := costmodel.NewWeighted()
	assert.Equal(t, 1.0, w.Del(0))
	assert.Equal(t, 1.0, w.Ins(0))
	assert.Equal(t, 0.0, w.Ren(7, 7))
	assert.Equal(t, 1.0, w.Ren(7, 8))
}

func TestWeighted_Overrides(t *testing.T) {
	w := costmodel.NewWeighted(
		costmodel.WithDefaultDel(2),
		costmodel.WithDefaultIns(3),
		costmodel.WithDefaultRen(4),
		costmodel.WithDelCost(1, 10),
		costmodel.WithInsCost(2, 20),
		costmodel.WithRenCost(1, 2, 99),
	)

	assert.Equal(t, 10.0, w.Del(1))
	assert.Equal(t, 2.0, w.Del(2)) // default
	assert.Equal(t, 20.0, w.Ins(2))
	assert.Equal(t, 3.0, w.Ins(1)) // default
	assert.Equal(t, 99.0, w.Ren(1, 2))
	assert.Equal(t, 4.0, w.Ren(2, 1)) // direction not overridden
	assert.Equal(t, 0.0, w.Ren(1, 1)) // identity always free
}

func TestPerType(t *testing.T) {
	p := costmodel.NewPerType(
		costmodel.WithTypeCost(costmodel.TypeKey, 5, 5, 5),
		costmodel.WithTypeCost(costmodel.TypeValue, 1, 1, 1),
	)

	assert.Equal(t, 5.0, p.DelTyped(costmodel.TypeKey))
	assert.Equal(t, 1.0, p.InsTyped(costmodel.TypeValue))
	assert.Equal(t, 1.0, p.DelTyped(costmodel.TypePlain)) // fallback unit cost
	assert.Equal(t, 0.0, p.RenTyped(costmodel.TypeKey, 3, 3))
	assert.Equal(t, 5.0, p.RenTyped(costmodel.TypeKey, 3, 4))

	// Model interface fallback always uses TypePlain.
	var m costmodel.Model = p
	assert.Equal(t, 1.0, m.Del(0))
}
