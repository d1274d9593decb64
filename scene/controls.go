package scene

import "github.com/odvcencio/stagehand/state"

// Intensity bounds for the slider control.
const (
	IntensityMin = 0.0
	IntensityMax = 100.0
)

// Controls is the source of truth for the UI-bound control state.
// Widgets write fields through two-way bindings; the controller reads
// them through subscriptions and never writes them back. Controls
// lives for the process; subscribers come and go.
type Controls struct {
	// Drift toggles ambient particle drift.
	Drift *state.Signal[bool]
	// Intensity scales particle speed; clamped to [IntensityMin, IntensityMax].
	Intensity *state.Signal[float64]
	// Caption is free-form text shown on the stage.
	Caption *state.Signal[string]
	// Actions delivers discrete control events.
	Actions *state.Bus[Action]
}

// NewControls creates a control set with default values.
func NewControls() *Controls {
	drift := state.NewSignal(false)
	drift.SetEqualFunc(state.EqualComparable[bool])

	caption := state.NewSignal("")
	caption.SetEqualFunc(state.EqualComparable[string])

	return &Controls{
		Drift:     drift,
		Intensity: state.NewClamped(50, IntensityMin, IntensityMax),
		Caption:   caption,
		Actions:   state.NewBus[Action](),
	}
}
