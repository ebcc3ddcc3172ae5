package merkletesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestGenerator produces deterministic leaf values for tree tests. Values
// are shaped like the event identities the trees commit to in production:
// a uuid with a label prefix. The RNG is seeded so runs are repeatable.
type TestGenerator struct {
	T   *testing.T
	Cfg TestConfig
	Rng *rand.Rand
}

func NewTestGenerator(t *testing.T, cfg TestConfig) TestGenerator {
	return TestGenerator{
		T:   t,
		Cfg: cfg,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// GenerateLeafValues returns count leaf values, ready for the tree builder.
func (g *TestGenerator) GenerateLeafValues(count int) [][]byte {
	values := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		values = append(values, g.NextLeafValue())
	}
	return values
}

// NextLeafValue returns a single leaf value drawn from the seeded RNG.
func (g *TestGenerator) NextLeafValue() []byte {
	id, err := uuid.NewRandomFromReader(g.Rng)
	require.NoError(g.T, err)
	return []byte(fmt.Sprintf("%s/events/%s", g.Cfg.TestLabelPrefix, id.String()))
}
