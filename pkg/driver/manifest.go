package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project manifest looked up by FindManifest.
const ManifestFileName = "helang.yml"

// Manifest represents the parsed contents of helang.yml.
type Manifest struct {
	Path        string
	Name        string
	Version     string
	Authors     []string
	Preload     []*SourceSpec
	Targets     map[string]*TargetSpec
	TargetOrder []string

	targetEntries []manifestTargetEntry
}

// TargetSpec describes a runnable program from the manifest. Preload units
// run, in order, into the same environment before Main.
type TargetSpec struct {
	Name         string
	OriginalName string
	Main         string
	Preload      []*SourceSpec
}

type manifestTargetEntry struct {
	sanitized string
	spec      *TargetSpec
}

// SourceSpec locates one source unit: a path relative to the manifest, or a
// file inside a git repository pinned by rev, tag or branch.
type SourceSpec struct {
	Path   string
	Git    string
	Rev    string
	Tag    string
	Branch string
	File   string
}

// Revision returns the git revision expression for the spec.
func (s *SourceSpec) Revision() string {
	switch {
	case s.Rev != "":
		return s.Rev
	case s.Tag != "":
		return "refs/tags/" + s.Tag
	case s.Branch != "":
		return "refs/remotes/origin/" + s.Branch
	default:
		return "HEAD"
	}
}

// Pin is the human-readable revision: the rev, tag or branch as written.
func (s *SourceSpec) Pin() string {
	for _, pin := range []string{s.Rev, s.Tag, s.Branch} {
		if pin != "" {
			return pin
		}
	}
	return "HEAD"
}

func (s *SourceSpec) String() string {
	if s.Git != "" {
		return fmt.Sprintf("%s@%s:%s", s.Git, s.Pin(), s.File)
	}
	return s.Path
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var ErrManifestNotFound = errors.New("manifest: helang.yml not found")

// FindManifest walks upward from start until it finds helang.yml.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", start, err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}

// LoadManifest parses helang.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Dir is the directory relative paths in the manifest resolve against.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if m.Version != "" && !versionPattern.MatchString(m.Version) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("invalid version %q", m.Version))
	}
	for i, src := range m.Preload {
		for _, issue := range src.validate() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preload[%d]: %s", i, issue))
		}
	}

	targetNames := make(map[string]string, len(m.targetEntries))
	for _, entry := range m.targetEntries {
		target := entry.spec
		if target == nil {
			continue
		}
		if other, exists := targetNames[entry.sanitized]; exists {
			errs.Issues = append(errs.Issues, fmt.Sprintf("targets %q and %q collide after sanitization", other, target.OriginalName))
		} else {
			targetNames[entry.sanitized] = target.OriginalName
		}
		if target.Main == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("target %q requires a main entrypoint", target.OriginalName))
		}
		for i, src := range target.Preload {
			for _, issue := range src.validate() {
				errs.Issues = append(errs.Issues, fmt.Sprintf("targets.%s.preload[%d]: %s", target.OriginalName, i, issue))
			}
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (s *SourceSpec) validate() []string {
	var errs []string
	if s == nil {
		return errs
	}
	switch {
	case s.Path != "" && s.Git != "":
		errs = append(errs, "path sources cannot also specify git")
	case s.Path == "" && s.Git == "":
		errs = append(errs, "must specify path or git")
	}
	if s.Git != "" && s.File == "" {
		errs = append(errs, "git sources require file")
	}
	if s.Git == "" && (s.Rev != "" || s.Tag != "" || s.Branch != "" || s.File != "") {
		errs = append(errs, "rev, tag, branch and file apply only to git sources")
	}
	pins := 0
	for _, pin := range []string{s.Rev, s.Tag, s.Branch} {
		if pin != "" {
			pins++
		}
	}
	if pins > 1 {
		errs = append(errs, "specify at most one of rev, tag or branch")
	}
	return errs
}

var ErrNoTargets = errors.New("manifest: no targets defined")

// DefaultTarget returns the first target in manifest order.
func (m *Manifest) DefaultTarget() (*TargetSpec, error) {
	if m == nil {
		return nil, ErrNoTargets
	}
	for _, entry := range m.targetEntries {
		if entry.spec != nil {
			return entry.spec, nil
		}
	}
	return nil, ErrNoTargets
}

// FindTarget looks up a target by sanitized or original name.
func (m *Manifest) FindTarget(name string) (*TargetSpec, bool) {
	if m == nil {
		return nil, false
	}
	key := sanitizeSegment(strings.TrimSpace(name))
	if key != "" {
		if target, ok := m.Targets[key]; ok && target != nil {
			return target, true
		}
	}
	for _, entry := range m.targetEntries {
		if entry.spec != nil && strings.EqualFold(entry.spec.OriginalName, strings.TrimSpace(name)) {
			return entry.spec, true
		}
	}
	return nil, false
}

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,2}([0-9A-Za-z\-\+\.]*)?$`)

var segmentPattern = regexp.MustCompile(`[^a-z0-9_]+`)

// sanitizeSegment lowercases name and folds separators to underscores.
func sanitizeSegment(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = segmentPattern.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}

type manifestFile struct {
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	Authors stringList `yaml:"authors"`
	Preload sourceList `yaml:"preload"`
	Targets targetMap  `yaml:"targets"`
}

type targetYAML struct {
	Main    string     `yaml:"main"`
	Preload sourceList `yaml:"preload"`
}

type targetMap struct {
	items []targetMapEntry
}

type targetMapEntry struct {
	name string
	spec *targetYAML
}

func (tm *targetMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		tm.items = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: targets must be a mapping")
	}
	items := make([]targetMapEntry, 0, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: targets must not use empty keys")
		}
		entry := new(targetYAML)
		if valueNode.Kind == yaml.ScalarNode && valueNode.Tag != "!!null" {
			// `name: path/to/main.he` shorthand
			entry.Main = strings.TrimSpace(valueNode.Value)
		} else if err := valueNode.Decode(entry); err != nil {
			return fmt.Errorf("manifest: target %q: %w", key, err)
		}
		items = append(items, targetMapEntry{name: key, spec: entry})
	}
	tm.items = items
	return nil
}

type stringList []string

type sourceList []*SourceSpec

func (mf manifestFile) toManifest(path string) *Manifest {
	targetCapacity := len(mf.Targets.items)
	result := &Manifest{
		Path:          path,
		Name:          sanitizeSegment(mf.Name),
		Version:       strings.TrimSpace(mf.Version),
		Authors:       mf.Authors.Clone(),
		Preload:       mf.Preload.Clone(),
		Targets:       make(map[string]*TargetSpec, targetCapacity),
		TargetOrder:   make([]string, 0, targetCapacity),
		targetEntries: make([]manifestTargetEntry, 0, targetCapacity),
	}

	for _, item := range mf.Targets.items {
		if item.spec == nil {
			continue
		}
		original := strings.TrimSpace(item.name)
		sanitized := sanitizeSegment(original)
		spec := &TargetSpec{
			Name:         sanitized,
			OriginalName: original,
			Main:         strings.TrimSpace(item.spec.Main),
			Preload:      item.spec.Preload.Clone(),
		}
		if _, exists := result.Targets[sanitized]; !exists {
			result.Targets[sanitized] = spec
			result.TargetOrder = append(result.TargetOrder, sanitized)
		}
		result.targetEntries = append(result.targetEntries, manifestTargetEntry{sanitized: sanitized, spec: spec})
	}
	return result
}

func (l stringList) Clone() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for list but found %s", value.ShortTag())
	}
}

func (l sourceList) Clone() []*SourceSpec {
	if len(l) == 0 {
		return nil
	}
	out := make([]*SourceSpec, 0, len(l))
	for _, src := range l {
		if src == nil {
			continue
		}
		clone := *src
		out = append(out, &clone)
	}
	return out
}

func (l *sourceList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.SequenceNode:
		items := make(sourceList, 0, len(value.Content))
		for i, node := range value.Content {
			var src SourceSpec
			if err := src.unmarshalYAML(node); err != nil {
				return fmt.Errorf("manifest: preload[%d]: %w", i, err)
			}
			items = append(items, &src)
		}
		*l = items
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	default:
		if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
			*l = nil
			return nil
		}
		var src SourceSpec
		if err := src.unmarshalYAML(value); err != nil {
			return fmt.Errorf("manifest: preload: %w", err)
		}
		*l = sourceList{&src}
		return nil
	}
}

func (s *SourceSpec) unmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = SourceSpec{Path: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Path   string `yaml:"path"`
			Git    string `yaml:"git"`
			Rev    string `yaml:"rev"`
			Tag    string `yaml:"tag"`
			Branch string `yaml:"branch"`
			File   string `yaml:"file"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*s = SourceSpec{
			Path:   strings.TrimSpace(raw.Path),
			Git:    strings.TrimSpace(raw.Git),
			Rev:    strings.TrimSpace(raw.Rev),
			Tag:    strings.TrimSpace(raw.Tag),
			Branch: strings.TrimSpace(raw.Branch),
			File:   strings.TrimSpace(raw.File),
		}
		return nil
	case yaml.AliasNode:
		return s.unmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("expected string or mapping, found %s", value.ShortTag())
	}
}
