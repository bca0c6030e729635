package ftracker

import "fmt"

// InfoMessage is the computed summary of a single training
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary line
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Summary is the transport representation of an InfoMessage
type Summary struct {
	InfoMessage
	Message string `json:"message"`
}

// Package is a single batch of sensor readings
type Package struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

type Config struct {
	Packages []Package `json:"packages"`
}
