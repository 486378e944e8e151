package prompts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	lcprompts "github.com/tmc/langchaingo/prompts"
	"gopkg.in/yaml.v3"
)

// Builder loads named prompt templates from YAML and renders them with
// caller-supplied values.
type Builder struct {
	path    string
	prompts map[string]string
}

// NewBuilder loads the templates shipped with the binary.
func NewBuilder() (*Builder, error) {
	return newBuilder("embedded prompts.yaml", defaultPromptsYAML)
}

// NewBuilderFromFile loads templates from an external YAML file, overriding
// the embedded set.
func NewBuilderFromFile(path string) (*Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("prompts file not found at %s", path)
		}
		return nil, fmt.Errorf("read prompts file %s: %w", path, err)
	}
	return newBuilder(path, data)
}

func newBuilder(path string, data []byte) (*Builder, error) {
	templates := make(map[string]string)
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parse prompts file %s: %w", path, err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("prompts file %s defines no prompts", path)
	}
	return &Builder{
		path:    path,
		prompts: templates,
	}, nil
}

// Get renders the named template with the given values. Unknown names and
// missing placeholder values are errors.
func (b *Builder) Get(name string, values map[string]any) (string, error) {
	text, ok := b.prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", name, b.path)
	}

	tmpl := lcprompts.PromptTemplate{
		Template:       text,
		TemplateFormat: lcprompts.TemplateFormatFString,
	}
	rendered, err := tmpl.Format(values)
	if err != nil {
		return "", fmt.Errorf("render prompt %q: %w", name, err)
	}
	return rendered, nil
}

// Names lists the available prompt names, sorted.
func (b *Builder) Names() []string {
	names := make([]string, 0, len(b.prompts))
	for name := range b.prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
