/*
Package registry is a typed access layer over the live Windows registry.

Where hivekit manipulates offline hive files, this package wraps the
running system's registry: the seven fixed root namespaces are exposed as
Hive values, and every lifecycle operation starts from one of them.

# Quick Start

Create a key, write a value, read it back:

	key, err := registry.CurrentUser.Create(registry.Path(`Software\ExampleApp`), registry.Read|registry.Write)
	if err != nil {
	    return err
	}
	defer key.Close()

	v, _ := registry.StringValue("hello")
	if err := key.SetValue("Greeting", v); err != nil {
	    return err
	}

	got, err := key.Value("Greeting")

# Paths

Every operation accepts a PathSource: Path (UTF-8, encoded per call) or
WidePath (pre-encoded UTF-16). Encoding failures, such as an interior
NUL, surface as ErrEncoding before any native call happens.

# Errors

Failures carry an ErrKind and match sentinels through errors.Is:

	if errors.Is(err, registry.ErrNotFound) { ... }

The underlying native error code stays reachable through errors.As for
diagnostics.

# Ownership

A Key exclusively owns one native handle. Close it deterministically
(defer key.Close() on every path); double Close is a no-op. A recursive
Delete is irreversible and, on failure, may have already removed part of
the subtree. Load and Unload mutate system-wide registry state and
require backup/restore privileges the caller must already hold.

On platforms other than Windows everything compiles, and every operation
fails with ErrUnsupported.
*/
package registry
