package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinlinxc/pokerogue-biomes/route"
)

func TestParseMode(t *testing.T) {
	m, err := route.ParseMode(" Cycle ")
	require.NoError(t, err)
	assert.Equal(t, route.ModeCycle, m)

	_, err = route.ParseMode("loop")
	assert.ErrorIs(t, err, route.ErrUnknownMode)
}

func TestParseCriterion(t *testing.T) {
	c, err := route.ParseCriterion("LIKELIEST")
	require.NoError(t, err)
	assert.Equal(t, route.CriterionLikeliest, c)

	_, err = route.ParseCriterion("fastest")
	assert.ErrorIs(t, err, route.ErrUnknownCriterion)
}

func TestStrategy(t *testing.T) {
	assert.True(t, route.StrategyShortestCycle.Supported())
	assert.False(t, route.StrategyUnsupported.Supported())
	assert.Equal(t, route.StrategyLikeliestRoute, route.StrategyLikeliestRoute.Effective())
	assert.Equal(t, route.StrategyNone, route.Query{Source: "A", Destination: "B"}.Strategy(), "zero enums")

	_, err := route.Mode(0).MarshalText()
	assert.ErrorIs(t, err, route.ErrUnknownMode)
	_, err = route.Criterion(7).MarshalText()
	assert.ErrorIs(t, err, route.ErrUnknownCriterion)
}
