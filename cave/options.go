// SPDX-License-Identifier: MIT
// Package: cavepaths/cave
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Build itself never panics; it returns sentinel errors.

package cave

// BuildOption customizes Build by mutating a buildConfig before construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	startName string
	endName   string
	classify  func(string) Size
}

func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		startName: StartName,
		endName:   EndName,
		classify:  Classify,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStartName overrides the name that designates the start cave.
// Panics on an empty name.
func WithStartName(name string) BuildOption {
	if name == "" {
		panic("cave: WithStartName(\"\")")
	}
	return func(c *buildConfig) {
		c.startName = name
	}
}

// WithEndName overrides the name that designates the end cave.
// Panics on an empty name.
func WithEndName(name string) BuildOption {
	if name == "" {
		panic("cave: WithEndName(\"\")")
	}
	return func(c *buildConfig) {
		c.endName = name
	}
}

// WithClassifier replaces the casing rule used to tell Big from Small caves.
// Panics on nil.
func WithClassifier(fn func(name string) Size) BuildOption {
	if fn == nil {
		panic("cave: WithClassifier(nil)")
	}
	return func(c *buildConfig) {
		c.classify = fn
	}
}
