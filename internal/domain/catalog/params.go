package catalog

import (
	"github.com/phrazzld/memory-cards/internal/domain"
)

// Params defines the progression policy of the catalog
type Params struct {
	// Starting tier per difficulty
	InitialLevels map[domain.Difficulty]domain.LevelType

	// Last tier reachable through NextLevel per difficulty
	FinalLevels map[domain.Difficulty]domain.LevelType

	// Highest tier that has a face table; deals above it are empty
	DealtTiers domain.LevelType
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	EasyInitialLevel   domain.LevelType
	MediumInitialLevel domain.LevelType
	HardInitialLevel   domain.LevelType

	EasyFinalLevel   domain.LevelType
	MediumFinalLevel domain.LevelType
	HardFinalLevel   domain.LevelType
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		InitialLevels: map[domain.Difficulty]domain.LevelType{
			domain.DifficultyEasy:   domain.LevelOne,
			domain.DifficultyMedium: domain.LevelThree,
			domain.DifficultyHard:   domain.LevelFour,
		},

		// Easy stops after tier four, the others run to ten
		FinalLevels: map[domain.Difficulty]domain.LevelType{
			domain.DifficultyEasy:   domain.LevelFour,
			domain.DifficultyMedium: domain.LevelTen,
			domain.DifficultyHard:   domain.LevelTen,
		},

		DealtTiers: domain.LevelFour,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero or out-of-range values keep the default.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	override := func(m map[domain.Difficulty]domain.LevelType, d domain.Difficulty, t domain.LevelType) {
		if t.Valid() {
			m[d] = t
		}
	}

	override(params.InitialLevels, domain.DifficultyEasy, config.EasyInitialLevel)
	override(params.InitialLevels, domain.DifficultyMedium, config.MediumInitialLevel)
	override(params.InitialLevels, domain.DifficultyHard, config.HardInitialLevel)

	override(params.FinalLevels, domain.DifficultyEasy, config.EasyFinalLevel)
	override(params.FinalLevels, domain.DifficultyMedium, config.MediumFinalLevel)
	override(params.FinalLevels, domain.DifficultyHard, config.HardFinalLevel)

	return params
}
