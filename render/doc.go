// Package render turns a [highlight.Tree] into styled terminal text: it
// resolves the class strings [highlight.WalkText] emits back into
// [lipgloss.Style] values and layers in caller-added range overlays
// (search matches, selections) blended on top via [colors.BlendStyles].
package render
