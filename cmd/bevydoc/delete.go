package main

import (
	"fmt"

	"github.com/seba2390/bevydoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return bevydoc.Errorf(bevydoc.EINVALID, "use --force to confirm deletion")
	}

	l, err := deps.Lookups.FindLookupByKeyword(deps.Ctx, c.Keyword)
	if err != nil {
		if bevydoc.ErrorCode(err) == bevydoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %q is not cached. Use 'bevydoc list' to see cached lookups.\n", c.Keyword)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	if err := deps.Lookups.DeleteLookup(deps.Ctx, l.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", c.Keyword)
	return nil
}
