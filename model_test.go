package fabrik

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestParseChainJSONFile(t *testing.T) {
	logger := golog.NewTestLogger(t)

	solver, err := ParseChainJSONFile("testdata/threelink.json", "", logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, solver.Name(), test.ShouldEqual, "threelink")
	test.That(t, solver.ArmLength(), test.ShouldEqual, 370)

	renamed, err := ParseChainJSONFile("testdata/threelink.json", "leftarm", logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, renamed.Name(), test.ShouldEqual, "leftarm")
	test.That(t, solver.Base(), test.ShouldResemble, r2.Point{X: 0, Y: 0})
	test.That(t, solver.JointPositions(), test.ShouldHaveLength, 4)

	reached, err := solver.Solve(150, 150)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, reached, test.ShouldBeTrue)

	_, err = ParseChainJSONFile("testdata/nonexistent.json", "", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read json file")
}

func TestUnmarshalChainJSON(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := UnmarshalChainJSON(nil, "", logger)
	test.That(t, err, test.ShouldBeError, ErrNoChainInformation)

	_, err = UnmarshalChainJSON([]byte("not json"), "", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to unmarshal json file")

	solver, err := UnmarshalChainJSON([]byte(`{
		"name": "twolink",
		"base_x": 5,
		"base_y": 5,
		"segments": [{"length": 50, "angle_degs": 0}, {"length": 30, "angle_degs": 90}]
	}`), "", logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, solver.Base(), test.ShouldResemble, r2.Point{X: 5, Y: 5})
	test.That(t, solver.ArmLength(), test.ShouldEqual, 80)
	// Omitted margin falls back to the default.
	test.That(t, solver.marginOfError, test.ShouldEqual, DefaultMarginOfError)
}

func TestParseConfigInvalid(t *testing.T) {
	logger := golog.NewTestLogger(t)

	cfg := &ChainConfig{Name: "empty"}
	_, err := cfg.ParseConfig("", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "at least one segment")
	test.That(t, err.Error(), test.ShouldContainSubstring, `"empty"`)

	cfg = &ChainConfig{
		Name: "badlengths",
		Segments: []SegmentConfig{
			{Length: 10},
			{Length: 0},
			{Length: -3},
		},
	}
	_, err = cfg.ParseConfig("", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "segment 1")
	test.That(t, err.Error(), test.ShouldContainSubstring, "segment 2")

	cfg = &ChainConfig{
		Name:          "badmargin",
		MarginOfError: -1,
		Segments:      []SegmentConfig{{Length: 10}},
	}
	_, err = cfg.ParseConfig("", logger)
	test.That(t, err, test.ShouldWrap, ErrBadMargin)
}
