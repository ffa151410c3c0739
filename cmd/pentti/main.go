// Command pentti runs the hypervector query experiments from the command
// line.
//
//	pentti demo --dims 10000
//	pentti sweep --dims 1:10000:100 --sparsity .3,.4,.5 --trials 20
//	pentti fidelity --dims 128 --sizes 1,3,5,9,17
//	pentti query --vocab v.yaml --pairs Currency=Dollar,Color=Red --property Currency
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
