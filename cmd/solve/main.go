// Package main solves a planar chain described by a JSON file for a target
// point and reports the resulting joint positions.
package main

import (
	"context"
	"errors"
	"flag"
	"strconv"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"go.viam.com/fabrik"
)

var logger = golog.NewDevelopmentLogger("solve")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(_ context.Context, args []string, logger golog.Logger) error {
	flagSet := flag.NewFlagSet("solve", flag.ContinueOnError)
	modelPath := flagSet.String("model", "", "path to a chain JSON file")
	if err := flagSet.Parse(args[1:]); err != nil {
		return err
	}
	if *modelPath == "" || flagSet.NArg() != 2 {
		return errors.New("usage: solve -model <chain.json> <targetX> <targetY>")
	}
	x, err := strconv.ParseFloat(flagSet.Arg(0), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(flagSet.Arg(1), 64)
	if err != nil {
		return err
	}

	solver, err := fabrik.ParseChainJSONFile(*modelPath, "", logger)
	if err != nil {
		return err
	}

	reached, err := solver.Solve(x, y)
	if errors.Is(err, fabrik.ErrFailedToConverge) {
		logger.Warnw("showing best pose found", "error", err)
	} else if err != nil {
		return err
	}
	if !reached {
		logger.Infow("target out of reach", "x", x, "y", y, "armLength", solver.ArmLength())
		return nil
	}
	for i, pt := range solver.JointPositions() {
		logger.Infof("joint %d: (%.3f, %.3f)", i, pt.X, pt.Y)
	}
	return nil
}
