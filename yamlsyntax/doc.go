// Package yamlsyntax adapts github.com/goccy/go-yaml's parser into the
// highlight package's Tree/Cursor contract, giving the core engine a real
// grammar to walk: mappings, sequences, scalars, anchors, aliases, tags,
// and comments.
package yamlsyntax
