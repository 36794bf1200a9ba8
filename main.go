// main is the entry point for the gitpivot CLI.
package main

import (
	"errors"

	"github.com/huangsam/gitpivot/cmd"
	"github.com/huangsam/gitpivot/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var gitErr *contract.GitCommandError
		if errors.As(err, &gitErr) {
			contract.LogFatal("Error running git command", err)
		}
		contract.LogFatal("An error occurred", err)
	}
}
