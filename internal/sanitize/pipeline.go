// Package sanitize repairs the formatting defects commonly found in job
// descriptions typed into the store: glued bold labels, unspaced headings,
// badly indented nested lists and stray whitespace. It is a fixed sequence of
// text rewrites, not a Markdown parser; every stage assumes the previous ones
// already ran.
package sanitize

import "strings"

type Stage struct {
	Name  string
	Apply func(string) string
}

type Pipeline []Stage

func (p Pipeline) Run(text string) string {
	for _, stage := range p {
		text = stage.Apply(text)
	}
	return text
}

// Names lists the stages in execution order.
func (p Pipeline) Names() []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage.Name)
	}
	return names
}

var DefaultPipeline = Pipeline{
	{Name: "line-endings", Apply: NormalizeLineEndings},
	{Name: "bold-label-spacing", Apply: TightenBoldLabels},
	{Name: "heading-spacing", Apply: SpaceHeadings},
	{Name: "bold-headings", Apply: WrapBoldHeadings},
	{Name: "glued-labels", Apply: SeparateGluedLabels},
	{Name: "nested-list-indent", Apply: IndentNestedLists},
	{Name: "list-item-bold-join", Apply: JoinListItemBold},
	{Name: "adjacent-bold-runs", Apply: SeparateAdjacentBold},
	{Name: "collapse-whitespace", Apply: CollapseWhitespace},
	{Name: "dedent-prose", Apply: DedentProse},
	{Name: "final-cleanup", Apply: FinalCleanup},
	{Name: "trim", Apply: strings.TrimSpace},
}

// Sanitize runs DefaultPipeline. Empty input yields an empty string.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return DefaultPipeline.Run(text)
}
