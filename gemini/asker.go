// Package gemini answers questions about cached documentation using
// Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/seba2390/bevydoc"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements bevydoc.Asker at compile time.
var _ bevydoc.Asker = (*Asker)(nil)

// Asker implements bevydoc.Asker using Google Gemini.
type Asker struct {
	client  *genai.Client
	lookups bevydoc.LookupService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, lookups bevydoc.LookupService) *Asker {
	return &Asker{client: client, lookups: lookups}
}

// Ask answers a natural language question using the cached lookups.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", bevydoc.Errorf(bevydoc.EINVALID, "question required")
	}

	lookups, err := a.lookups.FindLookups(ctx, bevydoc.LookupFilter{SortBy: bevydoc.SortByKeyword})
	if err != nil {
		return "", err
	}
	if len(lookups) == 0 {
		return "", bevydoc.Errorf(bevydoc.ENOTFOUND, "no cached lookups; run a lookup first")
	}

	prompt := BuildUserPrompt(lookups, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", bevydoc.Errorf(bevydoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about the Bevy game engine API. Answer based only on the documentation provided. Cite the item path when you reference an item. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing documentation and question.
func BuildUserPrompt(lookups []*bevydoc.Lookup, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, l := range lookups {
		path := l.ItemPath
		if path == "" {
			path = l.Keyword
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<path>%s</path>\n", path)
		fmt.Fprintf(&sb, "<source>%s</source>\n", l.URL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", bevydoc.FormatLookups([]*bevydoc.Lookup{l}))
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
