package vocab

// Countries returns the four-property vocabulary of Kanerva's
// "What's the Dollar of Mexico?" example at the given dimension.
func Countries(dims int, sparsity float64) Config {
	return Config{
		Dims:     dims,
		Sparsity: sparsity,
		Properties: []Property{
			{Name: "Color", Values: []string{"Red", "Yellow"}},
			{Name: "Shape", Values: []string{"Round", "Square", "Moon"}},
			{Name: "Currency", Values: []string{"Dollar", "Peso"}},
			{Name: "Language", Values: []string{"English", "Spanish"}},
		},
	}
}
