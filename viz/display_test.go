package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fracviz/utils"
)

func TestChartDisplayColors(t *testing.T) {
	cd := NewChartDisplay()
	lineColor, bgColor := cd.chartColors()
	// Text is drawn in the foreground colour, so it must differ from the window
	assert.Equal(t, utils.GetColor(utils.White), bgColor)
	assert.Equal(t, utils.GetColor(utils.Black), lineColor)
	assert.NotEqual(t, bgColor, lineColor)
}
