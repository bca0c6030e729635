package ftracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bzimmer/ftracker"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  ftracker.InfoMessage
		want string
	}{
		{
			name: "swimming",
			msg:  ftracker.InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "rounding",
			msg:  ftracker.InfoMessage{TrainingType: "Running", Duration: 0.5, Distance: 1.23456, Speed: 2.46912, Calories: 12},
			want: "Тип тренировки: Running; Длительность: 0.500 ч.; Дистанция: 1.235 км; Ср. скорость: 2.469 км/ч; Потрачено ккал: 12.000.",
		},
		{
			name: "zero",
			msg:  ftracker.InfoMessage{TrainingType: "SportsWalking"},
			want: "Тип тренировки: SportsWalking; Длительность: 0.000 ч.; Дистанция: 0.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.Message())
		})
	}
}
