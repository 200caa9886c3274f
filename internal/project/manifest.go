// Package project loads the sable.toml manifest: package identity, emit
// options, and the ordered embedded-resource list handed to the emission
// pass.
package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/symbols"
)

// Manifest mirrors sable.toml.
type Manifest struct {
	Package   PackageSection    `toml:"package"`
	Emit      EmitSection       `toml:"emit"`
	Resources []ResourceSection `toml:"resource"`
}

// PackageSection describes the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// EmitSection describes the [emit] table.
type EmitSection struct {
	DebugInfo bool `toml:"debug-info"`
}

// ResourceSection describes one [[resource]] entry. Order in the file is the
// emission order.
type ResourceSection struct {
	Name   string `toml:"name"`
	Path   string `toml:"path"`
	Public bool   `toml:"public"`
}

// Load parses a manifest file. TOML or IO failures are reported as a
// PrjManifestSyntax diagnostic (no location: the TOML layer owns positions)
// and returned as an error.
func Load(path string, r diag.Reporter) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		diag.ReportError(r, diag.PrjManifestSyntax, source.NoSpan,
			fmt.Sprintf("%s: failed to parse manifest: %v", path, err)).Emit()
		return nil, fmt.Errorf("%s: failed to parse manifest: %w", path, err)
	}
	return &m, nil
}

// ValidateResources checks resource entries for structural problems the
// manifest owner must fix before emission makes sense: empty names or paths,
// duplicate names. Length limits are NOT checked here — that is the emission
// validator's job. Returns true when the list is usable.
func (m *Manifest) ValidateResources(r diag.Reporter) bool {
	ok := true
	seen := make(map[string]int, len(m.Resources))
	for i, res := range m.Resources {
		if res.Name == "" {
			diag.ReportError(r, diag.PrjBadResource, source.NoSpan,
				fmt.Sprintf("resource #%d has an empty name", i+1)).Emit()
			ok = false
		}
		if res.Path == "" {
			diag.ReportError(r, diag.PrjBadResource, source.NoSpan,
				fmt.Sprintf("resource '%s' has an empty path", res.Name)).Emit()
			ok = false
		}
		if res.Name != "" {
			if first, dup := seen[res.Name]; dup {
				diag.ReportError(r, diag.PrjDuplicateResource, source.NoSpan,
					fmt.Sprintf("resource '%s' declared more than once (entries #%d and #%d)", res.Name, first+1, i+1)).Emit()
				ok = false
			} else {
				seen[res.Name] = i
			}
		}
	}
	return ok
}

// Descriptors converts manifest entries into emission resource descriptors,
// preserving order. Providers open lazily relative to baseDir; validation
// never invokes them.
func (m *Manifest) Descriptors(baseDir string) []symbols.ResourceDescriptor {
	out := make([]symbols.ResourceDescriptor, 0, len(m.Resources))
	for _, res := range m.Resources {
		path := res.Path
		full := path
		if !filepath.IsAbs(full) {
			full = filepath.Join(baseDir, full)
		}
		out = append(out, symbols.ResourceDescriptor{
			Name:   res.Name,
			Path:   path,
			Public: res.Public,
			Provider: func() (io.ReadCloser, error) {
				// #nosec G304 -- path comes from the user's own manifest
				return os.Open(full)
			},
		})
	}
	return out
}
