// Package nodeprop implements a single node-type property used to attach
// compiled highlighting rules to a syntax tree's node types without any
// per-node allocation at match time.
package nodeprop
