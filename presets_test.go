package hypertune

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetSpacesAreValid(t *testing.T) {
	presets := map[string]struct {
		space Space
		keys  []string
	}{
		"neural network": {
			space: NeuralNetworkSpace(),
			keys:  []string{"learning_rate", "batch_size", "dropout", "hidden_units", "num_layers"},
		},
		"gradient boosting": {
			space: GradientBoostingSpace(),
			keys:  []string{"learning_rate", "n_estimators", "max_depth", "subsample", "reg_lambda"},
		},
		"support vector machine": {
			space: SupportVectorMachineSpace(),
			keys:  []string{"c", "kernel", "gamma", "degree"},
		},
	}

	for name, tt := range presets {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, tt.space.Validate())
			require.Len(t, tt.space, len(tt.keys))

			for _, key := range tt.keys {
				assert.Contains(t, tt.space, key)
			}

			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 50; i++ {
				assertInSpace(t, tt.space, tt.space.Sample(rng))
			}
		})
	}
}

func TestOptimizePresetSpace(t *testing.T) {
	opt, err := New(GradientBoostingSpace(), Config{
		Iterations:     12,
		InitialSamples: 4,
		NumCandidates:  50,
		Seed:           8,
	})
	require.NoError(t, err)

	// Reward a mid-range learning rate and shallow trees.
	res, err := opt.Optimize(func(params Assignment) (float64, error) {
		lr := params["learning_rate"].(float64)
		depth := params["max_depth"].(int)

		return -(lr-0.1)*(lr-0.1) - 0.01*float64(depth), nil
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.History)
	assertInSpace(t, GradientBoostingSpace(), res.BestParams)
}
