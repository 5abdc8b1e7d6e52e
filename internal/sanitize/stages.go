package sanitize

import (
	"regexp"
	"strings"
)

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

func rule(pattern, replacement string) rewrite {
	return rewrite{pattern: regexp.MustCompile(pattern), replacement: replacement}
}

func applyAll(text string, rewrites ...rewrite) string {
	for _, r := range rewrites {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

var (
	boldLabelSpacing = rule(`\*\*(.*?)\s*:\s*\*\*(\S)`, "**${1}:** ${2}")

	headingBreakBefore = rule(`([^\n])\s*###`, "${1}\n\n###")
	headingBreakAfter  = rule(`###\s*(.*?)\n`, "### ${1}\n\n")

	boldHeading = rule(`###\s*\*\*(.*?)\*\*`, "### **${1}**")

	gluedLabel = rule(`([^\n]+?)\s*\*\*([\w\s,]+?):\*\*`, "${1}\n\n**${2}:**")

	nestedListIndent = rule(`\n- ([^\n]+)\n {1,2}-`, "\n- ${1}\n    -")

	listItemBold = rule(`(\n- .*?[^:\n])\n[ \t]*\*\*([^:]+?)\*\*`, "${1} **${2}**")

	adjacentBold = rule(`\*\*([^*]+?)\*\*\*\*([^*]+?)\*\*`, "**${1}**\n\n**${2}**")

	extraBlankLines = rule(`\n{3,}`, "\n\n")
	innerSpaceRuns  = rule(`(\S)[ \t]+`, "${1} ")

	labelTrailingSpace = rule(`\*\*([\w\s,]+?):\*\*(\S)`, "**${1}:** ${2}")
	boldLineBreak      = rule(`\*\*([^*]+?)\*\*\n([^\n-])`, "**${1}**\n\n${2}")
	isolatedBoldLine   = rule(`\n\s*(\*\*[^*]+?\*\*)\s*\n`, "\n\n${1}\n\n")
	trailingParagraph  = rule(`\n\s*([^-\s][^*\n]+?)\s*$`, "\n\n${1}")

	orderedListMarker = regexp.MustCompile(`^\d+\.`)
)

func NormalizeLineEndings(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// TightenBoldLabels: "**Label :**text" -> "**Label:** text".
func TightenBoldLabels(text string) string {
	return applyAll(text, boldLabelSpacing)
}

// SpaceHeadings puts a blank line before every "###" and after its text.
func SpaceHeadings(text string) string {
	return applyAll(text, headingBreakBefore, headingBreakAfter)
}

func WrapBoldHeadings(text string) string {
	return applyAll(text, boldHeading)
}

// SeparateGluedLabels moves a "**Label:**" that follows other text on the same
// line into its own paragraph.
func SeparateGluedLabels(text string) string {
	return applyAll(text, gluedLabel)
}

// IndentNestedLists turns a one or two space nested marker under a top level
// item into a four space one.
func IndentNestedLists(text string) string {
	return applyAll(text, nestedListIndent)
}

// JoinListItemBold pulls a bold run on the following line back onto the list
// item, unless the bold run is a "Label:" header or the item ends with a colon.
func JoinListItemBold(text string) string {
	return applyAll(text, listItemBold)
}

func SeparateAdjacentBold(text string) string {
	return applyAll(text, adjacentBold)
}

// CollapseWhitespace leaves leading indentation alone so nested list markers
// keep their depth; DedentProse strips it from everything else.
func CollapseWhitespace(text string) string {
	return applyAll(text, extraBlankLines, innerSpaceRuns)
}

// DedentProse keeps list lines verbatim and trims every other line.
func DedentProse(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || orderedListMarker.MatchString(trimmed) {
			continue
		}
		lines[i] = trimmed
	}
	return strings.Join(lines, "\n")
}

func FinalCleanup(text string) string {
	return applyAll(text,
		gluedLabel,
		labelTrailingSpace,
		boldLineBreak,
		isolatedBoldLine,
		trailingParagraph,
	)
}
