package tools

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file accepted by the channel simulators. Values
// given on the command line win over the file.
//
//	trials: 100000
//	threads: 8
//	points: [0.01, 0.05, 0.1]
type Config struct {
	Trials  *uint     `yaml:"trials"`
	Threads *uint     `yaml:"threads"`
	Points  []float64 `yaml:"points"`
}

func LoadConfig(filepath string) (*Config, error) {
	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading config %v: %w", filepath, err)
	}

	var config Config
	if err = yaml.Unmarshal(bs, &config); err != nil {
		return nil, fmt.Errorf("error while parsing config %v: %w", filepath, err)
	}
	return &config, nil
}

// Apply copies the file's values into the flag variables the user did not set.
// pointsFlag names the flag holding the simulated channel parameters.
func (c *Config) Apply(cmd *cobra.Command, trials, threads *uint, points *[]float64, pointsFlag string) {
	flags := cmd.Flags()
	if c.Trials != nil && !flags.Changed("trials") {
		*trials = *c.Trials
	}
	if c.Threads != nil && !flags.Changed("threads") {
		*threads = *c.Threads
	}
	if len(c.Points) > 0 && !flags.Changed(pointsFlag) {
		*points = c.Points
	}
	logrus.Debugf("Simulation config: trials=%v threads=%v %v=%v", *trials, *threads, pointsFlag, *points)
}
