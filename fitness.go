package ftracker

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Workout codes reported by the sensors
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// ErrInputData is returned for any package that cannot be turned into a training
var ErrInputData = errors.New("неправильные входные данные")

func inputError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInputData}, args...)...)
}

func arity(code string, data []float64, n int) error {
	if len(data) != n {
		return inputError("%s expects %d values, got %d", code, n, len(data))
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return inputError("%s value %d is not a finite number", code, i)
		}
	}
	return nil
}

func whole(name string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, inputError("%s must be a whole number: %v", name, v)
	}
	return int(v), nil
}

// ReadPackage builds the training for the workout code from the positional sensor data
func ReadPackage(code string, data []float64) (Training, error) {
	log.Debug().Str("code", code).Floats64("data", data).Msg("package")
	switch code {
	case CodeSwimming:
		if err := arity(code, data, 5); err != nil {
			return nil, err
		}
		action, err := whole("action", data[0])
		if err != nil {
			return nil, err
		}
		count, err := whole("count_pool", data[4])
		if err != nil {
			return nil, err
		}
		s, err := NewSwimming(action, data[1], data[2], data[3], count)
		if err != nil {
			return nil, err
		}
		return s, nil
	case CodeRunning:
		if err := arity(code, data, 3); err != nil {
			return nil, err
		}
		action, err := whole("action", data[0])
		if err != nil {
			return nil, err
		}
		r, err := NewRunning(action, data[1], data[2])
		if err != nil {
			return nil, err
		}
		return r, nil
	case CodeWalking:
		if err := arity(code, data, 4); err != nil {
			return nil, err
		}
		action, err := whole("action", data[0])
		if err != nil {
			return nil, err
		}
		w, err := NewSportsWalking(action, data[1], data[2], data[3])
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, inputError("unknown workout code %q", code)
	}
}
