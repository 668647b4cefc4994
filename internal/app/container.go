package app

import (
	"github.com/samber/do/v2"

	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/internal/config"
	"github.com/nfrund/shopdocs/internal/content"
	"github.com/nfrund/shopdocs/internal/handlers"
	"github.com/nfrund/shopdocs/internal/rendering"
)

// NewContainer wires the application services. Providers are lazy singletons:
// the catalog is built the first time it is invoked and shared afterwards.
func NewContainer(cfg *config.Config) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.Provide(injector, provideCatalog)
	do.Provide(injector, provideRenderer)
	do.Provide(injector, provideTopicHandler)

	return injector
}

// Catalog returns the process catalog, building it on first use. Construction
// errors (duplicate or empty keys, unreadable content) are returned unchanged.
func Catalog(i do.Injector) (*catalog.Registry, error) {
	return do.Invoke[*catalog.Registry](i)
}

func provideCatalog(i do.Injector) (*catalog.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return content.BuildCatalog(cfg.ContentDir)
}

func provideRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideTopicHandler(i do.Injector) (*handlers.TopicHandler, error) {
	reg, err := do.Invoke[*catalog.Registry](i)
	if err != nil {
		return nil, err
	}
	cfg := do.MustInvoke[*config.Config](i)
	renderer := do.MustInvoke[rendering.Renderer](i)
	return handlers.NewTopicHandler(reg, renderer, cfg.AppName), nil
}
