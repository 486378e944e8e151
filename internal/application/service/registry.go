package service

import (
	"sort"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
)

var _ output.SourceRegistry = (*SourceRegistryImpl)(nil)

type SourceRegistryImpl struct {
	sources map[entity.SourceName]output.JokeSource
}

func NewSourceRegistry() *SourceRegistryImpl {
	return &SourceRegistryImpl{
		sources: make(map[entity.SourceName]output.JokeSource),
	}
}

func (r *SourceRegistryImpl) Register(source output.JokeSource) {
	r.sources[source.Name()] = source
}

func (r *SourceRegistryImpl) Get(name entity.SourceName) (output.JokeSource, bool) {
	source, ok := r.sources[name]
	return source, ok
}

func (r *SourceRegistryImpl) All() []output.JokeSource {
	result := make([]output.JokeSource, 0, len(r.sources))
	for _, name := range r.Names() {
		source := r.sources[name]
		result = append(result, source)
	}
	return result
}

func (r *SourceRegistryImpl) Names() []entity.SourceName {
	result := make([]entity.SourceName, 0, len(r.sources))
	for name := range r.sources {
		result = append(result, name)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
