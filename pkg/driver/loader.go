package driver

import (
	"fmt"
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set"
	"github.com/ethereum/go-ethereum/log"
)

// Source is one loaded unit of helang text.
type Source struct {
	Name string
	Text string
}

// Plan lists the units a target runs, preload units first.
type Plan struct {
	Target  string
	Preload []*Source
	Main    *Source
}

// Units returns the preload units followed by the main unit.
func (p *Plan) Units() []*Source {
	units := make([]*Source, 0, len(p.Preload)+1)
	units = append(units, p.Preload...)
	if p.Main != nil {
		units = append(units, p.Main)
	}
	return units
}

// Loader reads source units from disk or from git.
type Loader struct {
	git    *GitFetcher
	logger log.Logger
}

// NewLoader returns a loader; git may be nil when no git sources are used.
func NewLoader(git *GitFetcher) *Loader {
	return &Loader{git: git, logger: log.New("component", "loader")}
}

// LoadFile reads a single source file.
func (l *Loader) LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return &Source{Name: path, Text: string(data)}, nil
}

// Load resolves spec relative to base, the manifest directory.
func (l *Loader) Load(base string, spec *SourceSpec) (*Source, error) {
	if spec.Git != "" {
		if l.git == nil {
			return nil, fmt.Errorf("loader: %s: git sources are not enabled", spec)
		}
		text, err := l.git.ReadFile(spec)
		if err != nil {
			return nil, err
		}
		return &Source{Name: spec.String(), Text: text}, nil
	}
	return l.LoadFile(resolvePath(base, spec.Path))
}

// PlanTarget loads the units of the named target, or of the first target
// when name is empty. Sources listed more than once load only once.
func (l *Loader) PlanTarget(m *Manifest, name string) (*Plan, error) {
	var (
		target *TargetSpec
		err    error
	)
	if name == "" {
		target, err = m.DefaultTarget()
		if err != nil {
			return nil, err
		}
	} else {
		var ok bool
		if target, ok = m.FindTarget(name); !ok {
			return nil, fmt.Errorf("manifest: target %q not found in %s", name, m.Path)
		}
	}

	base := m.Dir()
	mainSpec := &SourceSpec{Path: target.Main}
	seen := mapset.NewThreadUnsafeSet()
	seen.Add(sourceKey(base, mainSpec))

	plan := &Plan{Target: target.Name}
	specs := make([]*SourceSpec, 0, len(m.Preload)+len(target.Preload))
	specs = append(specs, m.Preload...)
	specs = append(specs, target.Preload...)
	for _, spec := range specs {
		if !seen.Add(sourceKey(base, spec)) {
			l.logger.Debug("Skipping duplicate preload", "source", spec)
			continue
		}
		src, err := l.Load(base, spec)
		if err != nil {
			return nil, err
		}
		plan.Preload = append(plan.Preload, src)
	}
	plan.Main, err = l.Load(base, mainSpec)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Planned target", "target", target.Name, "preload", len(plan.Preload))
	return plan, nil
}

func sourceKey(base string, spec *SourceSpec) string {
	if spec.Git != "" {
		return "git:" + spec.String()
	}
	return "path:" + resolvePath(base, spec.Path)
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
