package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/deltasrc/taglight/highlight"
	"github.com/deltasrc/taglight/render"
	"github.com/deltasrc/taglight/style"
	"github.com/deltasrc/taglight/style/theme"
	"github.com/deltasrc/taglight/tag"
	"github.com/deltasrc/taglight/yamlsyntax"
)

// newPrinter builds a [render.Printer] for the given theme name, falling
// back to a table of plain, uncolored styles if the name is unknown (checked by the
// caller beforehand; kept defensive here for [newModel]'s live switching).
func newPrinter(themeName string) (*render.Printer, error) {
	rs, err := yamlsyntax.Rules()
	if err != nil {
		return nil, fmt.Errorf("compile yaml rules: %w", err)
	}

	rules := highlight.BuildRules(rs, yamlsyntax.NodeTypeNames)

	styles, ok := theme.Styles(themeName)
	if !ok {
		styles = style.NewStyles(lipgloss.NewStyle())
	}

	tags := make([]*tag.Tag, 0, len(style.Vocabulary)+len(yamlsyntax.Tags))
	tags = append(tags, style.Vocabulary...)
	tags = append(tags, yamlsyntax.Tags...)

	hl, classStyle := render.Highlighter(styles, tags)

	return render.NewPrinter(rules, hl, classStyle, *styles.Style(style.Text)), nil
}

// printFiles renders every file to w in source order, separated by a
// blank line and a path header.
func printFiles(w io.Writer, files []fileEntry, themeName string) error {
	p, err := newPrinter(themeName)
	if err != nil {
		return err
	}

	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "# %s\n", f.path)

		tree, err := yamlsyntax.Parse(f.content)
		if err != nil {
			fmt.Fprintf(w, "# parse error: %v\n", err)

			continue
		}

		err = p.Print(w, tree, 0, tree.Length(), func(from, to int) string {
			return string(f.content[from:to])
		})
		if err != nil {
			return fmt.Errorf("print %s: %w", f.path, err)
		}

		fmt.Fprintln(w)
	}

	return nil
}
