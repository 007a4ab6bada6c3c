package fabrik

import (
	"encoding/json"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// SegmentConfig describes one chain link in a chain JSON file. AngleDegs is
// relative to the previous segment and fixes the initial pose only.
type SegmentConfig struct {
	Length    float64 `json:"length"`
	AngleDegs float64 `json:"angle_degs"`
}

// ChainConfig represents all supported fields in a planar chain JSON file.
type ChainConfig struct {
	Name          string          `json:"name"`
	BaseX         float64         `json:"base_x"`
	BaseY         float64         `json:"base_y"`
	MarginOfError float64         `json:"margin_of_error,omitempty"`
	Segments      []SegmentConfig `json:"segments"`
}

// ParseConfig converts the ChainConfig into a ready-to-solve Solver2D named
// chainName, or the config's own name if chainName is empty. A zero margin
// of error falls back to DefaultMarginOfError.
func (cfg *ChainConfig) ParseConfig(chainName string, logger golog.Logger) (*Solver2D, error) {
	if chainName == "" {
		chainName = cfg.Name
	}

	var err error
	if len(cfg.Segments) == 0 {
		err = multierr.Append(err, errors.New("chain must define at least one segment"))
	}
	for i, seg := range cfg.Segments {
		if seg.Length <= 0 {
			err = multierr.Append(err, errors.Errorf("segment %d: length %f is not positive", i, seg.Length))
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid chain %q", chainName)
	}

	margin := cfg.MarginOfError
	if margin == 0 {
		margin = DefaultMarginOfError
	}
	solver, err := NewSolver2D(cfg.BaseX, cfg.BaseY, margin, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid chain %q", chainName)
	}
	solver.name = chainName
	for _, seg := range cfg.Segments {
		if err := solver.AddSegment(seg.Length, seg.AngleDegs); err != nil {
			return nil, err
		}
	}
	return solver, nil
}

// UnmarshalChainJSON parses the given JSON data into a chain solver.
// chainName overrides the name from the JSON when non-empty.
func UnmarshalChainJSON(jsonData []byte, chainName string, logger golog.Logger) (*Solver2D, error) {
	if len(jsonData) == 0 {
		return nil, ErrNoChainInformation
	}
	cfg := &ChainConfig{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig(chainName, logger)
}

// ParseChainJSONFile will read a given file and then parse the contained
// JSON data.
func ParseChainJSONFile(filename, chainName string, logger golog.Logger) (*Solver2D, error) {
	//nolint:gosec
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read json file")
	}
	return UnmarshalChainJSON(jsonData, chainName, logger)
}
