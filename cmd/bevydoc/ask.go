package main

import (
	"fmt"

	"github.com/seba2390/bevydoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		if bevydoc.ErrorCode(err) == bevydoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s Use 'bevydoc lookup' to cache some items first.\n", bevydoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
