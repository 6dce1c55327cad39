// Command steamviz explores a game catalog in a linked-view terminal dashboard
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/steamviz/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
