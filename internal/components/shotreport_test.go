package components_test

import (
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShotReportPlaysWithoutDevice(t *testing.T) {
	fx := engine.NewGameObject("MuzzleFlash")
	report := components.NewShotReport()
	fx.AddComponent(report)

	engine.PlayAll(fx)
	engine.PlayAll(fx)

	assert.Equal(t, 2, report.PlayCount())
}
