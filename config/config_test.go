package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhconv/zhconv/dict/starter"
)

func TestParse_CaseInsensitiveAndTrimmed(t *testing.T) {
	n, ok := Parse(" S2T ")
	require.True(t, ok)
	assert.Equal(t, S2T, n)

	n, ok = Parse("Tw2SpR")
	assert.False(t, ok)
	assert.Equal(t, Name(""), n)
}

func TestParse_UnknownConfig(t *testing.T) {
	_, ok := Parse("not-a-config")
	assert.False(t, ok)
}

func TestSupported_MatchesPipelineTable(t *testing.T) {
	for _, name := range Supported {
		rounds := Pipeline(name, false)
		assert.NotEmpty(t, rounds, "config %q has no rounds", name)
	}
	assert.Len(t, Supported, 16)
}

func TestPipeline_PunctuationSubstitutesS2TAndT2SRounds(t *testing.T) {
	rounds := Pipeline(S2T, true)
	require.Len(t, rounds, 1)
	assert.Equal(t, starter.S2TPunct, rounds[0].Key)

	rounds = Pipeline(T2S, true)
	require.Len(t, rounds, 1)
	assert.Equal(t, starter.T2SPunct, rounds[0].Key)
}

func TestPipeline_PunctuationLeavesOtherRoundsUntouched(t *testing.T) {
	without := Pipeline(S2TW, false)
	with := Pipeline(S2TW, true)
	require.Equal(t, len(without), len(with))
	assert.Equal(t, starter.S2TPunct, with[0].Key)
	assert.Equal(t, without[1].Key, with[1].Key) // TwVariantsOnly round unaffected
}

func TestPipeline_PunctuationIsNoOpForConfigsWithoutAnS2TOrT2SRound(t *testing.T) {
	without := Pipeline(T2TW, false)
	with := Pipeline(T2TW, true)
	assert.Equal(t, without, with)
}

func TestPipeline_ReturnsACopyNotTheSharedTable(t *testing.T) {
	rounds := Pipeline(S2T, false)
	rounds[0] = Round{starter.T2S}
	again := Pipeline(S2T, false)
	assert.Equal(t, starter.S2T, again[0].Key)
}
