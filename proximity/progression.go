package proximity

import "github.com/lixenwraith/spacefolio/parameter"

// Progression tracks experience earned by opening landmark overlays
type Progression struct {
	Experience int
	Level      int

	perActivation int
	perLevel      int
}

// NewProgression starts at zero experience, level 1
func NewProgression(perActivation, perLevel int) *Progression {
	if perActivation <= 0 {
		perActivation = parameter.ExperiencePerActivation
	}
	if perLevel <= 0 {
		perLevel = parameter.ExperiencePerLevel
	}
	return &Progression{
		Level:         1,
		perActivation: perActivation,
		perLevel:      perLevel,
	}
}

// Grant awards one activation and reports whether the level increased
func (p *Progression) Grant() bool {
	prev := p.Level
	p.Experience += p.perActivation
	p.Level = p.Experience/p.perLevel + 1
	return p.Level > prev
}
