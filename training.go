package ftracker

import "math"

const (
	mInKm  = 1000
	minInH = 60

	lenStep     = 0.65
	swimLenStep = 1.38

	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20

	walkCaloriesWeightMultiplier      = 0.035
	walkCaloriesSpeedWeightMultiplier = 0.029

	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Training is the set of calculations every workout kind supports
type Training interface {
	// Name is the label used in the summary
	Name() string
	// Hours is the duration of the training in hours
	Hours() float64
	// Distance in kilometers
	Distance() float64
	// MeanSpeed in km/h
	MeanSpeed() float64
	// SpentCalories in kilocalories
	SpentCalories() float64
}

// Base holds the readings shared by all workout kinds
type Base struct {
	Action   int     `json:"action"`
	Duration float64 `json:"duration"`
	Weight   float64 `json:"weight"`
}

func (b Base) Hours() float64 {
	return b.Duration
}

// Minutes returns the duration of the training in minutes
func (b Base) Minutes() float64 {
	return b.Duration * minInH
}

func (b Base) distance(step float64) float64 {
	return float64(b.Action) * step / mInKm
}

func (b Base) validate() error {
	switch {
	case b.Action < 0:
		return inputError("action must not be negative: %d", b.Action)
	case b.Duration <= 0:
		return inputError("duration must be positive: %v", b.Duration)
	case b.Weight <= 0:
		return inputError("weight must be positive: %v", b.Weight)
	}
	return nil
}

// Running is a run measured in steps
type Running struct {
	Base
}

// NewRunning validates the readings and returns a Running
func NewRunning(action int, duration, weight float64) (Running, error) {
	r := Running{Base{Action: action, Duration: duration, Weight: weight}}
	if err := r.validate(); err != nil {
		return Running{}, err
	}
	return r, nil
}

func (r Running) Name() string {
	return "Running"
}

func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r Running) SpentCalories() float64 {
	return (runCaloriesSpeedMultiplier*r.MeanSpeed() - runCaloriesSpeedShift) *
		r.Weight / mInKm * r.Minutes()
}

// SportsWalking is a race walk measured in steps
type SportsWalking struct {
	Base
	Height float64 `json:"height"`
}

// NewSportsWalking validates the readings and returns a SportsWalking
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	w := SportsWalking{
		Base:   Base{Action: action, Duration: duration, Weight: weight},
		Height: height,
	}
	if err := w.validate(); err != nil {
		return SportsWalking{}, err
	}
	if height <= 0 {
		return SportsWalking{}, inputError("height must be positive: %v", height)
	}
	return w, nil
}

func (w SportsWalking) Name() string {
	return "SportsWalking"
}

func (w SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// SpentCalories floors the speed²/height ratio before scaling it
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	ratio := math.Floor(speed * speed / w.Height)
	return (walkCaloriesWeightMultiplier*w.Weight +
		ratio*walkCaloriesSpeedWeightMultiplier*w.Weight) * w.Minutes()
}

// Swimming is a pool swim measured in strokes
type Swimming struct {
	Base
	LengthPool float64 `json:"length_pool"`
	CountPool  int     `json:"count_pool"`
}

// NewSwimming validates the readings and returns a Swimming
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	s := Swimming{
		Base:       Base{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
	if err := s.validate(); err != nil {
		return Swimming{}, err
	}
	switch {
	case lengthPool < 0:
		return Swimming{}, inputError("pool length must not be negative: %v", lengthPool)
	case countPool < 0:
		return Swimming{}, inputError("pool count must not be negative: %d", countPool)
	}
	return s, nil
}

func (s Swimming) Name() string {
	return "Swimming"
}

func (s Swimming) Distance() float64 {
	return s.distance(swimLenStep)
}

// MeanSpeed is derived from the pool laps, not the stroke count
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.Weight
}

// ShowTrainingInfo computes the summary for a training
func ShowTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
