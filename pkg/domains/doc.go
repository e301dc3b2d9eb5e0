// Package domains provides a registry of named bounded domains loaded from
// configuration.
//
// Applications usually share a handful of numeric ranges between layers: a
// guess between 1 and 100, a percentage between 0 and 100, a port between
// 1 and 65535. Declaring those ranges in configuration and resolving them by
// name keeps the bounds in one place instead of scattering literals across
// construction sites.
//
// # Architecture
//
// The package is built around two concepts:
//
//   - Source: backend that loads definitions (in-memory map or YAML document)
//   - Registry: validated, read-only name-to-domain lookup built from a Source
//
// All validation happens once, at registry construction. A registry that was
// constructed successfully only contains domains with consistent bounds, so
// lookups and value construction afterwards can only fail for the reasons the
// bounded package documents.
//
// # Usage
//
// From an in-memory map:
//
//	source := domains.NewInMemSource(map[string]domains.Def{
//	    "guess":      {Min: 1, Max: 100},
//	    "percentage": {Min: 0, Max: 100},
//	})
//
//	registry, err := domains.NewRegistry(ctx, source)
//	if err != nil {
//	    return err
//	}
//
//	v, err := registry.New("guess", input) // bounded.Value[int64]
//
// From a YAML document:
//
//	f, err := os.Open("domains.yaml")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	registry, err := domains.NewRegistry(ctx, domains.NewYAMLSource(f))
package domains
