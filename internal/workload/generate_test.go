package workload

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Ops: 500, Seed: 99, KeySpace: 50}
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 500)
}

func TestGenerateIntKeysInRange(t *testing.T) {
	ops, err := Generate(Config{Ops: 2000, Seed: 5, KeySpace: 20})
	require.NoError(t, err)

	kinds := make(map[OpKind]int)
	for _, op := range ops {
		kinds[op.Kind]++
		if !op.Kind.NeedsKey() {
			continue
		}
		k, err := strconv.Atoi(op.Key)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 20)
	}
	// Default mix: half inserts, the rest searches and deletes.
	assert.InDelta(t, 1000, kinds[OpInsert], 150)
	assert.Positive(t, kinds[OpSearch])
	assert.Positive(t, kinds[OpDelete])
	assert.Zero(t, kinds[OpMin]+kinds[OpMax])
}

func TestGenerateHonoursRatios(t *testing.T) {
	ops, err := Generate(Config{Ops: 1000, Seed: 1, KeySpace: 10, InsertRatio: 0.2, SearchRatio: 0.4, DeleteRatio: 0.3})
	require.NoError(t, err)

	kinds := make(map[OpKind]int)
	for _, op := range ops {
		kinds[op.Kind]++
	}
	assert.InDelta(t, 200, kinds[OpInsert], 60)
	assert.InDelta(t, 400, kinds[OpSearch], 60)
	assert.InDelta(t, 300, kinds[OpDelete], 60)
	assert.InDelta(t, 100, kinds[OpMin]+kinds[OpMax], 50)
}

func TestGenerateStringKeys(t *testing.T) {
	ops, err := Generate(Config{Ops: 300, Seed: 11, KeySpace: 10, StringKeys: true})
	require.NoError(t, err)

	distinct := make(map[string]struct{})
	for _, op := range ops {
		if op.Kind.NeedsKey() {
			assert.NotContains(t, op.Key, " ")
			distinct[op.Key] = struct{}{}
		}
	}
	assert.LessOrEqual(t, len(distinct), 10)
}

func TestGenerateExtremesFillRemainder(t *testing.T) {
	ops, err := Generate(Config{Ops: 1000, Seed: 3, InsertRatio: 0.5})
	require.NoError(t, err)

	extremes := 0
	for _, op := range ops {
		if op.Kind == OpMin || op.Kind == OpMax {
			extremes++
		}
	}
	assert.InDelta(t, 500, extremes, 100)
}

func TestNormalizeConfig(t *testing.T) {
	cfg, err := normalizeConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, defaultOps, cfg.Ops)
	assert.Equal(t, defaultKeySpace, cfg.KeySpace)
	assert.Equal(t, defaultInsertRatio, cfg.InsertRatio)

	bad := []Config{
		{Ops: -1},
		{KeySpace: -3},
		{InsertRatio: -0.1},
		{InsertRatio: 0.6, SearchRatio: 0.6},
	}
	for _, c := range bad {
		_, err := normalizeConfig(c)
		assert.ErrorIs(t, err, ErrBadConfig, "%+v", c)
	}
}
