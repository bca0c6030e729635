package ftracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Formatter writes a single summary
type Formatter func(w io.Writer, m InfoMessage) error

// TextFormatter writes the summary line
func TextFormatter(w io.Writer, m InfoMessage) error {
	_, err := fmt.Fprintln(w, m.Message())
	return err
}

// JSONFormatter writes the summary as a single line of json
func JSONFormatter(w io.Writer, m InfoMessage) error {
	return json.NewEncoder(w).Encode(&Summary{InfoMessage: m, Message: m.Message()})
}

// ReadConfig decodes a package list
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Report writes a summary for each package, stopping at the first failure
func Report(w io.Writer, pkgs []Package, f Formatter) error {
	if f == nil {
		f = TextFormatter
	}
	for i, pkg := range pkgs {
		t, err := ReadPackage(pkg.Code, pkg.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		msg := ShowTrainingInfo(t)
		log.Debug().
			Str("type", msg.TrainingType).
			Float64("distance", msg.Distance).
			Float64("calories", msg.Calories).
			Msg("report")
		if err := f(w, msg); err != nil {
			return err
		}
	}
	return nil
}
