package game

import "math"

const (
	FieldWidth  = 80
	FieldHeight = 24

	PaddleHeight  = 4
	PaddleWidth   = 2
	PaddleOffsetX = 2 // gap between wall and paddle face

	ServeDelayTicks = 180 // 3s countdown at 60 ticks/s

	InitialBallSpeed    = 0.5
	MaxBallSpeed        = 1.2
	SpeedIncreaseFactor = 1.03 // reserved for rally escalation, not applied

	ServeArc     = math.Pi / 3 // serve angle drawn uniformly from ±30°
	MinServeSine = 0.3         // re-roll serves flatter than this
)
