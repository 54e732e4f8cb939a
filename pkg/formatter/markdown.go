package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/textframes/pkg/extract"
)

// ToMarkdown renders an extraction result as a markdown report: a table of
// contents followed by one section per region listing its labels in order.
// Labels are written as inline code so escaped line breaks stay visible.
func ToMarkdown(res *extract.Result, docName string) string {
	var sb strings.Builder

	if docName == "" {
		sb.WriteString("# Text Contents\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("# Text Contents - %s\n\n", docName))
	}
	sb.WriteString(fmt.Sprintf("%d region(s), %d text item(s).\n\n", res.Len(), res.Count()))

	if res.Len() == 0 {
		return sb.String()
	}

	// Table of contents
	sb.WriteString("| Region | Items |\n")
	sb.WriteString("|--------|-------|\n")
	for _, name := range res.Names() {
		sb.WriteString(fmt.Sprintf("| [%s](#%s) | %d |\n", escapeCell(name), toKebabCase(name), len(res.Labels(name))))
	}
	sb.WriteString("\n")

	for _, name := range res.Names() {
		sb.WriteString(fmt.Sprintf("## %s\n\n", name))

		labels := res.Labels(name)
		if len(labels) == 0 {
			sb.WriteString("_No text found._\n\n")
			continue
		}
		for i, label := range labels {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, inlineCode(label)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// inlineCode wraps s in enough backticks that backticks inside s do not
// end the span.
func inlineCode(s string) string {
	if s == "" {
		return "` `"
	}
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// This is used for generating heading anchors from region names.
// Special characters are removed, and spaces/underscores are replaced with hyphens.
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	// Remove any non-alphanumeric characters except hyphens
	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
