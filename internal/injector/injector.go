//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/scenedoc/internal/config"
	"github.com/zeusync/scenedoc/internal/server"
)

func InitializeTool(cfg config.Config) (*Tool, func(), error) {
	wire.Build(ToolSet)
	return nil, nil, nil
}

func InitializeAssetServer(cfg config.Config) (*server.AssetServer, error) {
	wire.Build(ServerSet)
	return nil, nil
}
