// main.go
//
// Entry point for helium-sim; CLI handling lives in the Cobra commands under cmd/

package main

import (
	"github.com/luisoro0494/vast-interview/cmd"
)

func main() {
	cmd.Execute()
}
