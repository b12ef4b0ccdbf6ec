package main

import (
	"encoding/json"
	"fmt"

	"github.com/seba2390/bevydoc"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	deps.Looker.Refresh = c.Refresh

	l, err := deps.Looker.Lookup(deps.Ctx, c.Keyword)
	if err != nil {
		if bevydoc.ErrorCode(err) == bevydoc.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, bevydoc.NotFoundMessage)
			return nil
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
