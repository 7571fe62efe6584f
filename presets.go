package hypertune

//////
// Preset search spaces.
// Ready-made spaces for common tuning scenarios. Presets are plain data:
// they are consumed through the ordinary Space input contract and carry no
// special behavior. Adjust ranges freely by copying and editing the map.
//////

// NeuralNetworkSpace returns a search space for tuning a feed-forward
// neural network: learning rate, batch size, dropout regularization, layer
// width, and depth.
func NeuralNetworkSpace() Space {
	return mustSpace(map[string]Dimension{
		"learning_rate": Continuous{Min: 1e-4, Max: 0.1},
		"batch_size":    Discrete{Values: []any{16, 32, 64, 128, 256}},
		"dropout":       Continuous{Min: 0.0, Max: 0.5},
		"hidden_units":  Integer{Min: 32, Max: 512},
		"num_layers":    Integer{Min: 1, Max: 8},
	})
}

// GradientBoostingSpace returns a search space for tuning a gradient-boosted
// tree ensemble: learning rate, ensemble size, tree depth, row subsampling,
// and L2 regularization.
func GradientBoostingSpace() Space {
	return mustSpace(map[string]Dimension{
		"learning_rate": Continuous{Min: 0.01, Max: 0.3},
		"n_estimators":  Integer{Min: 50, Max: 500},
		"max_depth":     Integer{Min: 3, Max: 10},
		"subsample":     Continuous{Min: 0.5, Max: 1.0},
		"reg_lambda":    Continuous{Min: 0.0, Max: 10.0},
	})
}

// SupportVectorMachineSpace returns a search space for tuning a support
// vector machine: regularization strength, kernel family, kernel
// coefficient, and polynomial degree.
func SupportVectorMachineSpace() Space {
	return mustSpace(map[string]Dimension{
		"c":      Continuous{Min: 0.1, Max: 100.0},
		"kernel": Discrete{Values: []any{"linear", "rbf", "poly"}},
		"gamma":  Continuous{Min: 1e-4, Max: 1.0},
		"degree": Integer{Min: 2, Max: 5},
	})
}

// mustSpace builds a space from descriptors known to be valid at compile
// time. Only preset constructors use it.
func mustSpace(dims map[string]Dimension) Space {
	s, err := NewSpace(dims)
	if err != nil {
		panic(err)
	}

	return s
}
