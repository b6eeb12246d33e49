// Package catalog turns YAML biome documents into immutable core.Graph values.
//
// What:
//
//   - Default builds the embedded Pokerogue biome graph (34 biomes, root Town).
//   - Load reads a document from disk, Parse from memory.
//   - Resolve picks an explicit path, then $BIOMEROUTE_GRAPH, then the default.
//
// Biomes are declared in document order and each source's transitions keep
// their listed order, so searches over a loaded graph expand neighbors in the
// order the document gives them.
//
// Documents are checked twice: struct validation (version, non-empty root,
// unique biome names, probabilities in (0,1]) and graph construction (no
// self-loops, no parallel edges). Structural integrity of the built graph
// (endpoint closure, reachability from the root) is left to Catalog.Validate,
// so a caller decides whether a defective graph is fatal.
//
// Errors:
//
//   - ErrInvalidDocument: decode, validation or construction failure.
//   - ErrFileTooLarge: file above MaxYAMLFileSize.
//
// Every load emits a "catalog.Parse" span and increments
// biomeroute_catalog_loads_total{source,outcome}.
package catalog
