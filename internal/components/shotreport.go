package components

import (
	"gunrange/internal/audio"
	"gunrange/internal/engine"
)

// ShotReport makes a noise when its effect object is played.
type ShotReport struct {
	engine.BaseComponent
	Volume      float32
	MaxDistance float32
	Length      float32 // seconds

	plays int
}

func NewShotReport() *ShotReport {
	return &ShotReport{
		Volume:      0.6,
		MaxDistance: 80,
		Length:      0.12,
	}
}

func (s *ShotReport) Play() {
	s.plays++
	audio.PlayReport(s.GetGameObject().WorldPosition(), s.Volume, s.MaxDistance, s.Length)
}

func (s *ShotReport) PlayCount() int {
	return s.plays
}
