package bevydoc

import "strings"

// FormatLookup renders a single lookup for terminal display: the item path,
// the definition as a Rust code fence, then the example if one was found.
func FormatLookup(l *Lookup) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(l.ItemPath)
	if l.Kind != KindUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(l.Kind))
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	sb.WriteString(l.URL)
	sb.WriteString("\n\n## Definition\n\n```rust\n")
	sb.WriteString(strings.TrimRight(l.Definition, "\n"))
	sb.WriteString("\n```\n")
	if l.Example != "" {
		sb.WriteString("\n## Example\n\n```rust\n")
		sb.WriteString(strings.TrimRight(l.Example, "\n"))
		sb.WriteString("\n```\n")
	}
	return sb.String()
}

// FormatLookups formats cached lookups for LLM context.
// Lookups are separated by blank lines.
func FormatLookups(lookups []*Lookup) string {
	if len(lookups) == 0 {
		return ""
	}

	parts := make([]string, 0, len(lookups))
	for _, l := range lookups {
		header := l.ItemPath
		if header == "" {
			header = l.URL
		}
		var sb strings.Builder
		sb.WriteString("## Item: " + header + "\n")
		sb.WriteString("```rust\n" + strings.TrimRight(l.Definition, "\n") + "\n```\n")
		if l.Example != "" {
			sb.WriteString("Example:\n```rust\n" + strings.TrimRight(l.Example, "\n") + "\n```\n")
		}
		if l.Doc != "" {
			sb.WriteString(l.Doc)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}
