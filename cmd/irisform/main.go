// irisform serves the iris measurement form and classifies submissions.
//
// Usage:
//
//	irisform serve [--config=config.yaml] [--debug]
//	irisform predict <sepal-length> <sepal-width> <petal-length> <petal-width>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
