package registry

import "github.com/joshuapare/regkit/internal/native"

// activeBackend is the process-wide native backend: advapi32 on Windows,
// a stub that fails with ErrUnsupported elsewhere. Tests swap it for a
// fake; nothing else mutates it.
var activeBackend = native.Default()

func backend() native.Backend { return activeBackend }
