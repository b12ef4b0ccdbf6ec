package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/seba2390/bevydoc"
	"github.com/seba2390/bevydoc/lookup"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	keywords, err := readKeywords(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}
	if len(keywords) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no keywords in %s\n", c.File)
		return bevydoc.Errorf(bevydoc.EINVALID, "no keywords in %s", c.File)
	}

	deps.Looker.Refresh = c.Refresh
	if c.Concurrency > 0 {
		deps.Looker.Concurrency = c.Concurrency
	}

	progress := func(event lookup.ProgressEvent) {
		switch event.Type {
		case lookup.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Looking up %d keywords\n", event.Total)
		case lookup.ProgressResolved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Keyword)
		case lookup.ProgressMissed:
			// Only load failures and empty result sets get the fixed
			// not-found line; other error classes report their message.
			msg := bevydoc.NotFoundMessage
			if bevydoc.ErrorCode(event.Error) != bevydoc.ENOTFOUND {
				msg = bevydoc.ErrorMessage(event.Error)
			}
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n",
				event.Completed, event.Total, event.Keyword, msg)
		case lookup.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Looker.LookupAll(deps.Ctx, keywords, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Resolved %d of %d keywords", result.Resolved, len(keywords))
	if result.Shared > 0 {
		fmt.Fprintf(deps.Stdout, " (%d shared an item page)", result.Shared)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

// readKeywords reads one keyword per line, skipping blanks and # comments.
func readKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	return keywords, scanner.Err()
}
