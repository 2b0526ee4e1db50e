// Package config defines the shape of the build and query CLIs'
// configuration, counterpart to the original's jpv/src/config.rs: which
// named sub-indices are enabled, and where their backing files live.
// Resolving a config file's path (XDG dirs, flags, env) is left to the
// cmd/ entry points; this package only holds the resulting struct and
// its defaults.
package config

import "github.com/udoprog/jpv-go/pkg/index"

// Kind names one of the three dictionary sources a sub-index is built
// from, mirroring config.rs's IndexKind.
type Kind string

const (
	KindJMdict    Kind = "jmdict"
	KindKanjidic2 Kind = "kanjidic2"
	KindJMnedict  Kind = "jmnedict"
)

// IndexKind maps a Kind onto the builder's Kind enum.
func (k Kind) IndexKind() index.Kind {
	switch k {
	case KindKanjidic2:
		return index.KindKanji
	case KindJMnedict:
		return index.KindName
	default:
		return index.KindPhrase
	}
}

// Source is one named sub-index: its dictionary kind, the path a build
// reads from or a query opens, and whether it is enabled.
type Source struct {
	Name    string
	Kind    Kind
	Path    string
	Enabled bool
}

// Build is the configuration a build CLI invocation reads: which
// dictionary sources to stream into packed sub-indices, and where to
// write them.
type Build struct {
	Sources   []Source
	OutputDir string
}

// Query is the configuration a query CLI invocation reads: which
// packed sub-index files to open.
type Query struct {
	Sources []Source
}

// DefaultBuild returns the three-source default config.rs ships
// (jmdict, kanjidic2, jmnedict, all enabled), with XML source paths
// left blank for the caller (cmd/jpvbuild) to fill in from flags.
func DefaultBuild(outputDir string) Build {
	return Build{
		OutputDir: outputDir,
		Sources: []Source{
			{Name: "jmdict", Kind: KindJMdict, Enabled: true},
			{Name: "kanjidic2", Kind: KindKanjidic2, Enabled: true},
			{Name: "jmnedict", Kind: KindJMnedict, Enabled: true},
		},
	}
}

// DefaultQuery returns the three-source default, all enabled, with
// each packed-index path set to <indexDir>/<name>.bin.
func DefaultQuery(indexDir string) Query {
	return Query{
		Sources: []Source{
			{Name: "jmdict", Kind: KindJMdict, Path: indexDir + "/jmdict.bin", Enabled: true},
			{Name: "kanjidic2", Kind: KindKanjidic2, Path: indexDir + "/kanjidic2.bin", Enabled: true},
			{Name: "jmnedict", Kind: KindJMnedict, Path: indexDir + "/jmnedict.bin", Enabled: true},
		},
	}
}

// Enabled returns the subset of sources with Enabled set.
func (b Build) Enabled() []Source { return filterEnabled(b.Sources) }

// Disabled returns the names of every source with Enabled unset,
// matching the "disabled list returned to the caller" spec.md's
// Configuration collaborator calls for.
func (b Build) Disabled() []string { return disabledNames(b.Sources) }

// Enabled returns the subset of sources with Enabled set.
func (q Query) Enabled() []Source { return filterEnabled(q.Sources) }

// Disabled returns the names of every source with Enabled unset.
func (q Query) Disabled() []string { return disabledNames(q.Sources) }

func filterEnabled(sources []Source) []Source {
	var out []Source
	for _, s := range sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func disabledNames(sources []Source) []string {
	var out []string
	for _, s := range sources {
		if !s.Enabled {
			out = append(out, s.Name)
		}
	}
	return out
}
