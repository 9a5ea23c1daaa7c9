package roadmap

import "github.com/nextsteps/nextsteps-cli/api"

// CurrentStage returns the stage under the cursor. ok is false until a
// roadmap is present.
func (s State) CurrentStage() (stage api.Stage, ok bool) {
	if s.Roadmap == nil || s.Cursor < 0 || s.Cursor >= len(s.Roadmap.Stages) {
		return api.Stage{}, false
	}
	return s.Roadmap.Stages[s.Cursor], true
}

// StageNumber is the display number of the current stage: the stage's
// own order field when present, else its 1-based position.
func (s State) StageNumber() int {
	stage, ok := s.CurrentStage()
	if !ok {
		return 0
	}
	if stage.Order != nil {
		return *stage.Order
	}
	return s.Cursor + 1
}

// TotalStages is the number of stages in the held roadmap.
func (s State) TotalStages() int {
	if s.Roadmap == nil {
		return 0
	}
	return len(s.Roadmap.Stages)
}

// Progress is the completion fraction (cursor+1)/len(stages), always
// in (0, 1] while a roadmap is present.
func (s State) Progress() float64 {
	total := s.TotalStages()
	if total == 0 {
		return 0
	}
	return float64(s.Cursor+1) / float64(total)
}
