// Package scene bridges reactive control state to a frame-driven stage.
package scene

// Action is a discrete control event routed to the stage.
// Actions carry no payload; they are delivered at most once to
// subscribers registered at emission time.
type Action int

const (
	// ActionPulse spawns a ring of particles from the stage center.
	ActionPulse Action = iota
	// ActionScatter randomizes the velocity of every live particle.
	ActionScatter
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPulse:
		return "pulse"
	case ActionScatter:
		return "scatter"
	default:
		return "unknown"
	}
}
