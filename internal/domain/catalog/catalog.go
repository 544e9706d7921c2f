// Package catalog defines the levels of the game, the faces dealt for each
// level and style, and how a game progresses from one level to the next.
package catalog

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/phrazzld/memory-cards/internal/domain"
)

// Dealer defines the level catalog operations the game depends on
type Dealer interface {
	// CardsForLevel returns the faces to deal, each face exactly twice
	CardsForLevel(level domain.Level, style domain.Style) []domain.Face

	// InitialLevel returns the level a new game starts at
	InitialLevel(difficulty domain.Difficulty) domain.Level

	// NextLevel returns the successor of current, or false when the game ends there
	NextLevel(current domain.Level, difficulty domain.Difficulty) (domain.Level, bool)
}

// Catalog is the standard Dealer implementation
type Catalog struct {
	params *Params

	mu  sync.Mutex
	rng *rand.Rand
}

var _ Dealer = (*Catalog)(nil)

// NewCatalog creates a catalog that shuffles every deal using rng
func NewCatalog(rng *rand.Rand) *Catalog {
	if rng == nil {
		panic("rng cannot be nil")
	}
	return NewCatalogWithParams(NewDefaultParams(), rng)
}

// NewFixtureCatalog creates a catalog that deals faces in their canonical,
// unshuffled order: [v1, v1, v2, v2, ...]
func NewFixtureCatalog() *Catalog {
	return NewCatalogWithParams(NewDefaultParams(), nil)
}

// NewCatalogWithParams creates a catalog with a custom progression policy.
// A nil rng disables shuffling.
func NewCatalogWithParams(params *Params, rng *rand.Rand) *Catalog {
	if params == nil {
		panic("params cannot be nil")
	}
	return &Catalog{params: params, rng: rng}
}

// CardsForLevel implements Dealer. Tiers above the dealt tiers and the
// animals style have no face table and produce an empty deal.
func (c *Catalog) CardsForLevel(level domain.Level, style domain.Style) []domain.Face {
	if !level.Type.Valid() || level.Type > c.params.DealtTiers {
		return []domain.Face{}
	}

	distinct := 2 * int(level.Type)
	faces := make([]domain.Face, 0, distinct*2)
	for i := 0; i < distinct; i++ {
		face, ok := faceAt(style, i)
		if !ok {
			return []domain.Face{}
		}
		faces = append(faces, face, face)
	}

	c.shuffle(faces)
	return faces
}

// InitialLevel implements Dealer
func (c *Catalog) InitialLevel(difficulty domain.Difficulty) domain.Level {
	t, ok := c.params.InitialLevels[difficulty]
	if !ok {
		t = domain.LevelOne
	}
	return domain.NewLevel(t)
}

// NextLevel implements Dealer
func (c *Catalog) NextLevel(current domain.Level, difficulty domain.Difficulty) (domain.Level, bool) {
	final, ok := c.params.FinalLevels[difficulty]
	if !ok || !current.Type.Valid() || current.Type >= final {
		return domain.Level{}, false
	}
	return domain.NewLevel(current.Type + 1), true
}

// CardCount returns how many cards a deal of level in style contains
func (c *Catalog) CardCount(level domain.Level, style domain.Style) int {
	return len(c.CardsForLevel(level, style))
}

// Levels lists every tier of the game in order
func Levels() []domain.Level {
	levels := make([]domain.Level, 0, int(domain.LevelTen))
	for t := domain.LevelOne; t <= domain.LevelTen; t++ {
		levels = append(levels, domain.NewLevel(t))
	}
	return levels
}

func (c *Catalog) shuffle(faces []domain.Face) {
	if c.rng == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})
}

// faceAt returns the i-th distinct face of style
func faceAt(style domain.Style, i int) (domain.Face, bool) {
	switch style {
	case domain.StyleNumbers:
		return domain.Face(strconv.Itoa(i + 1)), true
	case domain.StyleLetters:
		if i >= 26 {
			return "", false
		}
		return domain.Face(string(rune('A' + i))), true
	default:
		return "", false
	}
}
