// Package main provides the taglight CLI: a terminal YAML syntax
// highlighter built on the taglight engine.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"

	"github.com/deltasrc/taglight/internal/filepaths"
	"github.com/deltasrc/taglight/style"
	"github.com/deltasrc/taglight/style/theme"
)

func main() {
	var (
		themeName   string
		interactive bool
		listThemes  bool
	)

	cmd := &cobra.Command{
		Use:   "taglight [glob...]",
		Short: "A terminal YAML syntax highlighter",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			if listThemes {
				printThemeList(os.Stdout)

				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("requires at least one file or glob argument")
			}

			paths, err := filepaths.Expand(args...)
			if err != nil {
				return err
			}

			files := make([]fileEntry, 0, len(paths))

			for _, path := range paths {
				content, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
				if err != nil {
					return fmt.Errorf("read file %s: %w", path, err)
				}

				files = append(files, fileEntry{path: path, content: content})
			}

			if _, ok := theme.Styles(themeName); !ok {
				slog.Debug("unknown theme, falling back", slog.String("theme", themeName))

				themeName = "monokai"
			}

			if interactive {
				m := newModel(files, themeName)

				p := tea.NewProgram(m)

				_, err = p.Run()
				if err != nil {
					return fmt.Errorf("run program: %w", err)
				}

				return nil
			}

			return printFiles(os.Stdout, files, themeName)
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "monokai", "color theme to use")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "launch the interactive pager")
	cmd.Flags().BoolVar(&listThemes, "list-themes", false, "list available themes and exit")

	err := fang.Execute(context.Background(), cmd)
	if err != nil {
		os.Exit(1)
	}
}

func printThemeList(w *os.File) {
	dark := theme.List(style.Dark)
	light := theme.List(style.Light)

	sort.Strings(dark)
	sort.Strings(light)

	fmt.Fprintln(w, "Dark themes:")

	for _, name := range dark {
		fmt.Fprintln(w, " ", name)
	}

	fmt.Fprintln(w, "Light themes:")

	for _, name := range light {
		fmt.Fprintln(w, " ", name)
	}
}

// fileEntry holds a file path and its contents, read once up front so
// both the plain and interactive render paths share the same data.
type fileEntry struct {
	path    string
	content []byte
}
