package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	params := NewFromConfigString(" seed=7, prefer_goal ,,ratio=0.5,name=a=b")
	assert.Equal(t, Params{"seed": "7", "prefer_goal": "", "ratio": "0.5", "name": "a=b"}, params)
	assert.Equal(t, "name=a=b,prefer_goal,ratio=0.5,seed=7", params.String())

	seed, err := PopParamOr(params, "seed", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, seed)
	preferGoal, err := PopParamOr(params, "prefer_goal", false)
	require.NoError(t, err)
	assert.True(t, preferGoal)
	ratio, err := GetParamOr(params, "ratio", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)
	missing, err := PopParamOr(params, "missing", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", missing)

	err = CheckAllUsed(params)
	require.ErrorContains(t, err, `"name" "ratio"`)
	delete(params, "name")
	delete(params, "ratio")
	require.NoError(t, CheckAllUsed(params))
}

func TestParamsErrors(t *testing.T) {
	params := NewFromConfigString("seed=x,flag=maybe")
	_, err := GetParamOr(params, "seed", 0)
	require.Error(t, err)
	_, err = PopParamOr(params, "flag", true)
	require.Error(t, err)
	assert.Contains(t, params, "flag", "not removed on errors")
}
