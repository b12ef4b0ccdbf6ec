// Package lookup provides documentation lookup orchestration.
// It coordinates search URL construction, fetching, result ranking,
// extraction, and caching of docs.rs documentation pages.
package lookup

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/seba2390/bevydoc"
	"golang.org/x/sync/errgroup"
)

// Looker orchestrates keyword lookups against docs.rs.
// SearchFetcher fetches the JS-rendered results page; ItemFetcher fetches
// the static item pages. The two may be the same implementation.
type Looker struct {
	SearchFetcher bevydoc.Fetcher
	ItemFetcher   bevydoc.Fetcher
	Parser        bevydoc.SearchParser
	Extractor     bevydoc.DocExtractor
	Converter     bevydoc.Converter
	Lookups       bevydoc.LookupService
	RateLimiter   bevydoc.RateLimiter
	Frontier      bevydoc.ItemFrontier
	Concurrency   int
	RetryDelays   []time.Duration

	// RetryLog, when set, receives a line for each retried fetch.
	RetryLog LogFunc

	// Refresh bypasses the cache and refetches even when a keyword is cached.
	Refresh bool

	mu       sync.Mutex
	inflight map[string]chan struct{}
}

// Result holds the outcome of a batch lookup operation.
type Result struct {
	Resolved int // keywords that produced a cached lookup
	Missed   int // keywords that ended in "Documentation not found."
	Shared   int // keywords that reused an item fetched earlier in the run
}

// ProgressEvent reports progress during a batch lookup.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Keyword   string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressResolved
	ProgressMissed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Lookup performs the full workflow for one keyword: build the search URL,
// fetch and parse the results page, rank candidates, fetch the best item
// page, and extract its definition and example. The resulting lookup is
// cached and returned.
//
// A load failure or an empty result set returns ENOTFOUND; callers present
// that as the fixed bevydoc.NotFoundMessage literal.
func (l *Looker) Lookup(ctx context.Context, keyword string) (*bevydoc.Lookup, error) {
	lookup, _, err := l.lookupShared(ctx, keyword)
	return lookup, err
}

// search fetches the results page for a keyword and parses its candidates.
func (l *Looker) search(ctx context.Context, keyword string) ([]bevydoc.Candidate, error) {
	searchURL, err := bevydoc.SearchURL(keyword)
	if err != nil {
		return nil, err
	}

	html, err := l.fetch(ctx, l.SearchFetcher, searchURL)
	if err != nil {
		return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "search page failed to load: %v", err)
	}

	return l.Parser.ParseResults(html, searchURL)
}

// fetchItem retrieves an item page and extracts its documentation.
// The URL is checked against the docs.rs/bevy/latest scope before fetching.
func (l *Looker) fetchItem(ctx context.Context, itemURL string) (*bevydoc.ItemDoc, error) {
	if !bevydoc.InScope(itemURL) {
		return nil, bevydoc.Errorf(bevydoc.EINVALID, "URL %q outside docs.rs/bevy/latest", itemURL)
	}

	html, err := l.fetch(ctx, l.ItemFetcher, itemURL)
	if err != nil {
		return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "item page failed to load: %v", err)
	}

	doc, err := l.Extractor.ExtractItem(html, itemURL)
	if err != nil {
		return nil, err
	}

	if l.Converter != nil && doc.DocHTML != "" {
		if md, err := l.Converter.Convert(doc.DocHTML); err == nil {
			doc.Doc = strings.TrimSpace(md)
		}
	}

	return doc, nil
}

// fetch applies rate limiting and retry around a single fetch.
func (l *Looker) fetch(ctx context.Context, fetcher bevydoc.Fetcher, rawURL string) (string, error) {
	if l.RateLimiter != nil {
		if domain := hostOf(rawURL); domain != "" {
			if err := l.RateLimiter.Wait(ctx, domain); err != nil {
				return "", err
			}
		}
	}

	delays := l.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	return FetchWithRetryDelays(ctx, rawURL, fetcher.Fetch, l.RetryLog, delays)
}

// LookupAll resolves keywords concurrently. Keywords resolving to an item
// URL already fetched in this run reuse the cached lookup instead of
// refetching the page.
func (l *Looker) LookupAll(ctx context.Context, keywords []string, progress ProgressFunc) (*Result, error) {
	total := len(keywords)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	type batchResult struct {
		keyword string
		lookup  *bevydoc.Lookup
		shared  bool
		err     error
	}

	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, keyword := range keywords {
			keyword := keyword
			g.Go(func() error {
				lookup, shared, err := l.lookupShared(gctx, keyword)
				resultCh <- batchResult{keyword: keyword, lookup: lookup, shared: shared, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{}
	completed := 0
	for br := range resultCh {
		completed++
		if br.err != nil {
			result.Missed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressMissed,
					Completed: completed,
					Total:     total,
					Keyword:   br.keyword,
					Error:     br.err,
				})
			}
			continue
		}

		result.Resolved++
		if br.shared {
			result.Shared++
		}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressResolved,
				Completed: completed,
				Total:     total,
				Keyword:   br.keyword,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// lookupShared is Lookup with frontier-based item deduplication for batch
// runs. If the keyword's best candidate was already fetched this run, the
// stored lookup for that item is copied under the new keyword.
func (l *Looker) lookupShared(ctx context.Context, keyword string) (*bevydoc.Lookup, bool, error) {
	keyword = strings.TrimSpace(keyword)

	if !l.Refresh && l.Lookups != nil {
		if cached, err := l.Lookups.FindLookupByKeyword(ctx, keyword); err == nil {
			return cached, false, nil
		} else if bevydoc.ErrorCode(err) != bevydoc.ENOTFOUND {
			return nil, false, err
		}
	}

	candidates, err := l.search(ctx, keyword)
	if err != nil {
		return nil, false, err
	}
	if len(candidates) == 0 {
		return nil, false, bevydoc.Errorf(bevydoc.ENOTFOUND, "no results for %q", keyword)
	}

	best := bevydoc.RankCandidates(keyword, candidates)[0]

	won, wait := l.claimItem(best.URL)
	if won {
		defer l.releaseItem(best.URL)
	} else {
		// Another keyword in this run claimed the item. Wait for its
		// fetch to settle before copying the stored lookup.
		if wait != nil {
			select {
			case <-wait:
			case <-ctx.Done():
				return nil, false, ctx.Err()
			}
		}
		if existing, err := l.findByURL(ctx, best.URL); err == nil {
			copied := *existing
			copied.ID = ""
			copied.Keyword = keyword
			if err := l.Lookups.CreateLookup(ctx, &copied); err != nil {
				return nil, false, err
			}
			return &copied, true, nil
		}
		// Fall through and fetch anyway: the claiming keyword failed.
	}

	doc, err := l.fetchItem(ctx, best.URL)
	if err != nil {
		return nil, false, err
	}

	lookup := &bevydoc.Lookup{
		Keyword:    keyword,
		URL:        doc.URL,
		ItemPath:   doc.Path,
		Kind:       doc.Kind,
		Definition: doc.Definition,
		Example:    doc.Example,
		Doc:        doc.Doc,
	}
	if l.Lookups != nil {
		if err := l.Lookups.CreateLookup(ctx, lookup); err != nil {
			return nil, false, err
		}
	}

	return lookup, false, nil
}

// claimItem claims an item URL for fetching. The claim and the in-flight
// registration happen under one lock so a loser always sees the winner's
// channel. A nil wait channel means the winner's fetch already settled.
func (l *Looker) claimItem(url string) (won bool, wait <-chan struct{}) {
	if l.Frontier == nil {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Frontier.Claim(url) {
		if l.inflight == nil {
			l.inflight = make(map[string]chan struct{})
		}
		ch := make(chan struct{})
		l.inflight[url] = ch
		return true, nil
	}
	return false, l.inflight[url]
}

// releaseItem marks an item URL's fetch as settled, successful or not.
func (l *Looker) releaseItem(url string) {
	l.mu.Lock()
	ch := l.inflight[url]
	delete(l.inflight, url)
	l.mu.Unlock()

	if ch != nil {
		close(ch)
	}
}

// findByURL returns a stored lookup whose resolved URL matches.
func (l *Looker) findByURL(ctx context.Context, itemURL string) (*bevydoc.Lookup, error) {
	if l.Lookups == nil {
		return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "no lookup cache configured")
	}

	lookups, err := l.Lookups.FindLookups(ctx, bevydoc.LookupFilter{})
	if err != nil {
		return nil, err
	}
	for _, existing := range lookups {
		if existing.URL == itemURL {
			return existing, nil
		}
	}
	return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "no lookup for URL %q", itemURL)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
