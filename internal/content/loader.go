package content

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/web"
)

// ManifestFile is the name of the topic index inside a content directory.
const ManifestFile = "manifest.yaml"

// BuiltinPriority and LocalPriority are used when a manifest sets no priority.
// They order the embedded corpus before any directory configured at runtime.
const (
	BuiltinPriority = 0
	LocalPriority   = 10
)

// Manifest is the ordered topic index of one content source. Priority is nil
// when the manifest leaves it out.
type Manifest struct {
	Source   string     `yaml:"source" validate:"required"`
	Priority *int       `yaml:"priority"`
	Topics   []TopicRef `yaml:"topics" validate:"dive"`
}

// TopicRef points at one fragment file. Title is optional.
type TopicRef struct {
	Key   string `yaml:"key" validate:"required"`
	Title string `yaml:"title"`
	File  string `yaml:"file" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ReadManifest parses and validates the manifest at the root of fsys.
func ReadManifest(fsys afero.Fs) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ManifestFile, err)
	}

	return &m, nil
}

// LoadSource reads the manifest and every fragment it lists, in manifest order.
// Fragments are read verbatim. defaultPriority applies when the manifest has no
// priority field.
func LoadSource(fsys afero.Fs, defaultPriority int) (catalog.Source, error) {
	m, err := ReadManifest(fsys)
	if err != nil {
		return catalog.Source{}, err
	}

	units := make([]catalog.Unit, 0, len(m.Topics))
	for _, ref := range m.Topics {
		payload, err := afero.ReadFile(fsys, path.Clean(ref.File))
		if err != nil {
			return catalog.Source{}, fmt.Errorf("failed to read fragment for topic %q: %w", ref.Key, err)
		}

		title := ref.Title
		if title == "" {
			title = TitleFromKey(ref.Key)
		}

		units = append(units, catalog.Unit{
			Key:     ref.Key,
			Title:   title,
			Payload: string(payload),
			Source:  m.Source,
		})
	}

	priority := defaultPriority
	if m.Priority != nil {
		priority = *m.Priority
	}

	return catalog.Source{
		Name:     m.Source,
		Priority: priority,
		Units:    units,
	}, nil
}

// Builtin loads the corpus embedded in the binary.
func Builtin() (catalog.Source, error) {
	src, err := LoadSource(afero.FromIOFS{FS: web.Content()}, BuiltinPriority)
	if err != nil {
		return catalog.Source{}, fmt.Errorf("builtin content: %w", err)
	}
	return src, nil
}

// Dir loads a content directory from disk. The directory is opened read-only.
func Dir(dir string) (catalog.Source, error) {
	fsys := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	src, err := LoadSource(fsys, LocalPriority)
	if err != nil {
		return catalog.Source{}, fmt.Errorf("content dir %s: %w", dir, err)
	}
	return src, nil
}

// BuildCatalog builds the process catalog from the embedded corpus plus an
// optional extra directory. A key present in both is a startup error.
func BuildCatalog(extraDir string) (*catalog.Registry, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	sources := []catalog.Source{builtin}

	if extraDir != "" {
		local, err := Dir(extraDir)
		if err != nil {
			return nil, err
		}
		sources = append(sources, local)
	}

	reg, err := catalog.NewFromSources(sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to build topic catalog: %w", err)
	}

	slog.Info("Topic catalog built", "topics", reg.Len(), "sources", len(sources))
	return reg, nil
}
