package topics

import (
	"fmt"

	"github.com/nfrund/shopdocs/internal/app"
	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/internal/config"
	"github.com/nfrund/shopdocs/internal/logging"
)

// Initialize builds the catalog through the same container the server uses,
// so the CLI sees exactly what the server would serve.
func Initialize() (*catalog.Registry, error) {
	// Suppress all logging output to make CLI less chatty
	logging.Discard()

	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	injector := app.NewContainer(cfg)
	return app.Catalog(injector)
}
