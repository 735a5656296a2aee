package middleware

import (
	"context"
	"visa-office-backend/token"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AppContext bundles the dependencies the auth middleware needs.
type AppContext struct {
	DB          *gorm.DB
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}
