//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/totegamma/herodex/x/hero"
)

var heroHandlerProvider = wire.NewSet(hero.NewHandler, hero.NewService, hero.NewRepository)

func SetupHeroHandler(db *mongo.Database, mc *memcache.Client) hero.Handler {
	wire.Build(heroHandlerProvider)
	return nil
}

func SetupHeroService(db *mongo.Database, mc *memcache.Client) hero.Service {
	wire.Build(hero.NewService, hero.NewRepository)
	return nil
}
