//go:build cucumber

package oracle

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"oqa/internal/dataset"
)

// TestTrajectoryScenarios runs the oracle trajectory feature scenarios.
func TestTrajectoryScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "oracle", "trajectory.feature")
	suite := godog.TestSuite{
		Name:                "oracle-trajectory",
		ScenarioInitializer: InitializeTrajectoryScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeTrajectoryScenario wires steps for trajectory scenarios.
func InitializeTrajectoryScenario(ctx *godog.ScenarioContext) {
	state := &trajectoryScenarioState{}
	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return c, nil
	})

	ctx.Step(`^a table of 8 objects with 3 binary attributes$`, state.givenBinaryTable)
	ctx.Step(`^a table containing two indistinguishable objects$`, state.givenTwinTable)
	ctx.Step(`^the oracle simulates target "([^"]+)"$`, state.whenSimulate)
	ctx.Step(`^the trajectory starts at (\d+(?:\.\d+)?) bits$`, state.thenStartsAt)
	ctx.Step(`^the trajectory ends at (\d+(?:\.\d+)?) bits$`, state.thenEndsAt)
	ctx.Step(`^the oracle asks (\d+) questions$`, state.thenAsked)
	ctx.Step(`^every step has entropy no greater than the previous step$`, state.thenNonIncreasing)
}

type trajectoryScenarioState struct {
	table      dataset.Table
	trajectory Trajectory
}

func (s *trajectoryScenarioState) reset() {
	s.table = nil
	s.trajectory = Trajectory{}
}

func (s *trajectoryScenarioState) givenBinaryTable() error {
	s.table = binaryTable()
	return nil
}

func (s *trajectoryScenarioState) givenTwinTable() error {
	s.table = dataset.Table{
		"twin-a": {"color": "red", "shape": "cube"},
		"twin-b": {"color": "red", "shape": "cube"},
		"other":  {"color": "blue", "shape": "ball"},
	}
	return nil
}

func (s *trajectoryScenarioState) whenSimulate(target string) error {
	orc, err := New(s.table)
	if err != nil {
		return err
	}
	trajectory, err := orc.SimulateTarget(target)
	if err != nil {
		return err
	}
	s.trajectory = trajectory
	return nil
}

func (s *trajectoryScenarioState) thenStartsAt(bits float64) error {
	if len(s.trajectory.Steps) == 0 {
		return fmt.Errorf("empty trajectory")
	}
	if got := s.trajectory.Steps[0].Bits; got != bits {
		return fmt.Errorf("expected %v starting bits, got %v", bits, got)
	}
	return nil
}

func (s *trajectoryScenarioState) thenEndsAt(bits float64) error {
	if len(s.trajectory.Steps) == 0 {
		return fmt.Errorf("empty trajectory")
	}
	if got := s.trajectory.Steps[len(s.trajectory.Steps)-1].Bits; got != bits {
		return fmt.Errorf("expected %v final bits, got %v", bits, got)
	}
	return nil
}

func (s *trajectoryScenarioState) thenAsked(count int) error {
	if got := len(s.trajectory.Asked); got != count {
		return fmt.Errorf("expected %d questions, got %d", count, got)
	}
	return nil
}

func (s *trajectoryScenarioState) thenNonIncreasing() error {
	for i := 1; i < len(s.trajectory.Steps); i++ {
		if s.trajectory.Steps[i].Bits > s.trajectory.Steps[i-1].Bits {
			return fmt.Errorf("entropy increased at step %d", i)
		}
	}
	return nil
}
