package advisor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You review multiple-choice test items for a teacher after a psychometric analysis.

Rules:
- You are given the statistics that fell outside their acceptable range and the reviewer note for each.
- Explain the most likely cause in plain language a teacher understands.
- Suggest concrete edits to the stem or the distractors. Do not suggest re-running the analysis.
- If the item content is provided, propose a revised stem in the same language as the original. Otherwise leave the rewrite empty.
- Answer in the language of the reviewer notes.`

func buildUserMessage(s Subject) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Item %d (%s)\n", s.Entry.Ordinal, s.Entry.ItemID)
	if s.Content != "" {
		fmt.Fprintf(&b, "Content: %s\n", s.Content)
	} else {
		b.WriteString("Content: not provided\n")
	}

	b.WriteString("\nFlagged statistics:\n")
	for _, idx := range s.Entry.Indices {
		fmt.Fprintf(&b, "- %s = %.4g: %s\n", idx.Name, idx.Value, idx.Message)
	}

	if len(s.Options) > 0 {
		b.WriteString("\nOptions (selection rate, discrimination):\n")
		for i, o := range s.Options {
			fmt.Fprintf(&b, "%c. %s (%.2f, %.2f)\n", 'A'+i, o.Content, o.Analysis.SelectionRate, o.Analysis.DiscriminationIndex)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
