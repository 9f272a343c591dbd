// Package catalog reads the declarative per-platform tool catalogs.
//
// Catalogs are YAML documents keyed by category. macOS distinguishes
// Homebrew formulae from casks; Linux keys each category by package
// manager:
//
//	# macos.yaml                    # linux.yaml
//	packages:                       packages:
//	  essential: [git, ripgrep]       essential:
//	casks:                              apt: [git, ripgrep]
//	  essential: [iterm2]               pacman: [git, ripgrep]
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kmoser/dotsync/internal/platform"
)

// ToolSet is a platform-resolved set of tools for one category. The shape
// is decided at the parsing boundary: downstream code switches on the
// concrete variant, never on raw document structure.
type ToolSet interface {
	isToolSet()
	// Empty reports whether the set carries no tools at all.
	Empty() bool
}

// Packages is a plain package list (Linux, Windows).
type Packages []string

func (Packages) isToolSet() {}

// Empty reports whether the list holds no packages.
func (p Packages) Empty() bool { return len(p) == 0 }

// PackagesAndCasks holds Homebrew formulae and casks (macOS).
type PackagesAndCasks struct {
	Packages []string
	Casks    []string
}

func (PackagesAndCasks) isToolSet() {}

// Empty reports whether both lists are empty.
func (p PackagesAndCasks) Empty() bool {
	return len(p.Packages) == 0 && len(p.Casks) == 0
}

// macosDoc is the macos.yaml document shape.
type macosDoc struct {
	Packages map[string][]string `yaml:"packages"`
	Casks    map[string][]string `yaml:"casks"`
}

// linuxDoc is the linux.yaml document shape.
type linuxDoc struct {
	Packages map[string]map[string][]string `yaml:"packages"`
}

// Catalog resolves tool categories for one detected platform.
type Catalog struct {
	platform platform.Platform
	macos    *macosDoc
	linux    *linuxDoc
}

// Load reads the catalog document for the given platform from dir.
func Load(dir string, p platform.Platform) (*Catalog, error) {
	switch p.OS {
	case platform.OSMacOS:
		var doc macosDoc
		if err := readYAML(filepath.Join(dir, "macos.yaml"), &doc); err != nil {
			return nil, err
		}
		return &Catalog{platform: p, macos: &doc}, nil
	case platform.OSLinux:
		var doc linuxDoc
		if err := readYAML(filepath.Join(dir, "linux.yaml"), &doc); err != nil {
			return nil, err
		}
		return &Catalog{platform: p, linux: &doc}, nil
	default:
		return nil, fmt.Errorf("no tool catalog for platform %s", p.OS)
	}
}

// Resolve returns the tool set for a category. A category absent from the
// catalog (or empty for the active package manager) is an error; callers
// treat it as a per-category failure.
func (c *Catalog) Resolve(category string) (ToolSet, error) {
	switch {
	case c.macos != nil:
		set := PackagesAndCasks{
			Packages: c.macos.Packages[category],
			Casks:    c.macos.Casks[category],
		}
		if set.Empty() {
			return nil, fmt.Errorf("no tools found for category '%s'", category)
		}
		return set, nil
	case c.linux != nil:
		byManager, ok := c.linux.Packages[category]
		if !ok {
			return nil, fmt.Errorf("no tools found for category '%s'", category)
		}
		pkgs := byManager[c.platform.PackageManager]
		if len(pkgs) == 0 {
			return nil, fmt.Errorf("category '%s' has no packages for %s", category, c.platform.PackageManager)
		}
		return Packages(pkgs), nil
	default:
		return nil, fmt.Errorf("no tool catalog for platform %s", c.platform.OS)
	}
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return nil
}
