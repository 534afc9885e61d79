// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const defaultOpTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle used by all repositories.
// Connection and disconnection are tied to the fx lifecycle.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Connect(ctx); err != nil {
				return errors.Wrap(err, "failed to connect to MongoDB")
			}

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}

// opTimeout returns the per-operation timeout from config, falling back to a
// sane default when unset.
func opTimeout(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Mongo.Timeout > 0 {
		return cfg.Mongo.Timeout
	}

	return defaultOpTimeout
}
