// Package backend is a registry of graphics backends.
//
// Backend packages register a factory from init(), following the
// database/sql driver pattern, and applications select one by name:
//
//	import _ "github.com/gogpu/gg-graphics/backend/raster"
//
//	g, err := backend.New("raster", 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Backends that write their output to a file implement [FileBackend].
package backend
