package provider

import (
	"fmt"
	"strings"
)

// Names returns the supported resolver names.
func Names() []string {
	return []string{NameVanilla, NamePaper, NameFabric}
}

// New returns the resolver registered under name.
func New(name string, client JSONGetter, opts ...Option) (Resolver, error) {
	switch strings.ToLower(name) {
	case NameVanilla:
		return NewVanilla(client, opts...), nil
	case NamePaper:
		return NewPaper(client, opts...), nil
	case NameFabric:
		return NewFabric(client, opts...), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}
