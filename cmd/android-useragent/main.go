package main

import (
	"fmt"
	"os"

	"github.com/quasar/android-useragent/pkg/cmd"
	"github.com/quasar/android-useragent/pkg/configuration"
)

func main() {
	if err := cmd.NewRootCommand(configuration.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
