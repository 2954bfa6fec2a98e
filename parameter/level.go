package parameter

// Progression rewards
const (
	// ExperiencePerActivation is granted each time a landmark overlay opens
	ExperiencePerActivation = 25

	// ExperiencePerLevel is the divisor in level = floor(xp / divisor) + 1
	ExperiencePerLevel = 100
)
