// Package selector compiles path-like selector strings into per-node-name
// [Rule] chains.
//
// A selector string such as "BlockMapping/BlockMappingPair/Name!" names a
// path of ancestor node-type names ending in a target name, with an
// optional trailing mode suffix ("!" for Opaque, "/..." for Inherit). See
// [Compile] for the exact grammar and [Rule] for the compiled form.
package selector
