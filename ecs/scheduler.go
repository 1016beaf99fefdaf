package ecs

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// Phase orders systems within a frame. Writes made in an earlier phase are
// visible to every system in a later phase of the same frame.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseMotion
	PhaseCamera
	PhaseLayout
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseMotion:
		return "motion"
	case PhaseCamera:
		return "camera"
	case PhaseLayout:
		return "layout"
	default:
		return "unknown"
	}
}

type Scheduler struct {
	phases [phaseCount][]System
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers system in phase. Unknown phases and nil systems are ignored.
func (s *Scheduler) Add(phase Phase, system System) {
	if system == nil || phase < 0 || phase >= phaseCount {
		return
	}
	s.phases[phase] = append(s.phases[phase], system)
}

func (s *Scheduler) Update(w *World) {
	for _, systems := range s.phases {
		for _, system := range systems {
			system.Update(w)
		}
	}
}
