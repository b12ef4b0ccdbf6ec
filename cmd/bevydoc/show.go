package main

import (
	"encoding/json"
	"fmt"

	"github.com/seba2390/bevydoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	l, err := deps.Lookups.FindLookupByKeyword(deps.Ctx, c.Keyword)
	if err != nil {
		if bevydoc.ErrorCode(err) == bevydoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %q is not cached. Use 'bevydoc lookup %s' to fetch it.\n", c.Keyword, c.Keyword)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}

	fmt.Fprint(deps.Stdout, bevydoc.FormatLookup(l))
	return nil
}
