package injector

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/config"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/internal/serializer"
	"github.com/zeusync/scenedoc/internal/server"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

// Tool bundles what the document commands need.
type Tool struct {
	Config     config.Config
	Logger     log.Log
	Serializer *serializer.Serializer
	Context    *serializer.ReconstructionContext
}

var (
	CommonSet = wire.NewSet(ProvideLogger)

	ToolSet = wire.NewSet(
		CommonSet,
		ProvideCodec,
		ProvideFetcher,
		ProvideSerializer,
		ProvideReconstructionContext,
		wire.Struct(new(Tool), "*"),
	)

	ServerSet = wire.NewSet(
		CommonSet,
		ProvideAssetServer,
	)
)

func ProvideLogger(cfg config.Config) log.Log {
	return log.NewWithConfig(cfg.Log)
}

func ProvideCodec(cfg config.Config) (encoding.Codec, error) {
	return encoding.ForFormat(cfg.Document.Format, cfg.Document.Indent)
}

// ProvideFetcher dials the configured transport. The cleanup closes a
// websocket connection when one was opened.
func ProvideFetcher(cfg config.Config, logger log.Log) (assets.Fetcher, func(), error) {
	var (
		fetcher assets.Fetcher
		cleanup = func() {}
	)

	switch cfg.Assets.Transport {
	case config.TransportWS:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Assets.Timeout)
		defer cancel()
		ws, err := assets.DialWS(ctx, cfg.Assets.Endpoint, cfg.Assets.Timeout)
		if err != nil {
			return nil, nil, err
		}
		fetcher = ws
		cleanup = func() {
			if err := ws.Close(); err != nil {
				logger.Warn("Failed to close asset connection", log.Error(err))
			}
		}
	case config.TransportHTTP:
		fetcher = assets.NewHTTPFetcher(cfg.Assets.Timeout)
	default:
		return nil, nil, fmt.Errorf("%w: assets.transport %q", config.ErrInvalidConfig, cfg.Assets.Transport)
	}

	if cfg.Assets.CacheSize > 0 {
		fetcher = assets.NewCachingFetcher(fetcher, cfg.Assets.CacheSize)
	}

	logger.Debug("Asset fetcher ready",
		log.String("transport", cfg.Assets.Transport),
		log.String("base_url", cfg.Assets.BaseURL),
		log.Int("cache_size", cfg.Assets.CacheSize))

	return fetcher, cleanup, nil
}

func ProvideSerializer(logger log.Log, codec encoding.Codec) *serializer.Serializer {
	return serializer.New(logger, codec)
}

func ProvideReconstructionContext(cfg config.Config, fetcher assets.Fetcher, logger log.Log) *serializer.ReconstructionContext {
	return &serializer.ReconstructionContext{
		BaseURL: cfg.Assets.BaseURL,
		Fetcher: fetcher,
		Logger:  logger,
	}
}

func ProvideAssetServer(cfg config.Config, logger log.Log) (*server.AssetServer, error) {
	return server.NewAssetServer(server.Config{
		ListenAddr: cfg.Server.Address,
		Root:       cfg.Server.Root,
		MaxClients: cfg.Server.MaxClients,
	}, logger)
}
