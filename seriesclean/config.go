package seriesclean

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"code.byted.org/microservice/tsclean/series"
)

// TruncationMode what to do with the samples past a detected
// instability onset.
type TruncationMode string

// truncation modes
const (
	TruncationMark    TruncationMode = "mark_unstable" // default: record the stable range, keep the data
	TruncationHardCut TruncationMode = "hard_cut"      // drop everything from the onset onward
)

// Config selects the behavior of every cleaning stage. A nil pointer
// field skips that stage entirely.
type Config struct {
	InvalidValues series.InvalidMode     `yaml:"InvalidValues"` // default propagate
	Bounds        *series.Bounds         `yaml:"Bounds"`
	LocalOutliers *series.OutlierOptions `yaml:"LocalOutliers"`
	Smooth        *series.SmoothOptions  `yaml:"Smooth"`

	OscillationWeights   series.Weights `yaml:"OscillationWeights"`
	OscillationThreshold float64        `yaml:"OscillationThreshold"`
	WindowSize           int            `yaml:"WindowSize"`
	TruncationMode       TruncationMode `yaml:"TruncationMode"`

	BoundsAxis string `yaml:"BoundsAxis"` // CleanXYZ primary axis: y (default), z or x
	StepKey    string `yaml:"StepKey"`    // CleanTrajectory axis key, default "Step"

	// InPlace nil/true mutates the caller's series; false clones it
	// first. The caller owns this decision, the pipeline never
	// silently aliases when a copy was requested.
	InPlace *bool `yaml:"InPlace"`
}

// DefaultConfig .
func DefaultConfig() *Config {
	return &Config{
		InvalidValues:        series.InvalidPropagate,
		OscillationWeights:   series.DefaultWeights(),
		OscillationThreshold: series.DefaultScoreThreshold,
		WindowSize:           series.DefaultInstabilityWindow,
		TruncationMode:       TruncationMark,
		BoundsAxis:           "y",
		StepKey:              "Step",
	}
}

func (c *Config) inPlace() bool {
	return c.InPlace == nil || *c.InPlace
}

func (c *Config) stepKey() string {
	if c.StepKey == "" {
		return "Step"
	}
	return c.StepKey
}

func (c *Config) instabilityOptions() *series.InstabilityOptions {
	return &series.InstabilityOptions{
		WindowSize: c.WindowSize,
		Threshold:  c.OscillationThreshold,
		Weights:    c.OscillationWeights,
	}
}

// LoadConfig reads a YAML cleaning config, layered over the defaults.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config file err: %v", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(buf, config); err != nil {
		return nil, fmt.Errorf("unmarshal yaml err: %v", err)
	}

	return config, nil
}
