package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errActivationIncomplete) {
			// Files are already in place on the target; exit 2 so callers
			// can tell a degraded deploy from a hard failure.
			_, _ = fmt.Fprintln(os.Stdout, err.Error())
			exitFunc(2)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
		return
	}
}
