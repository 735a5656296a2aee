package controllers

import (
	"context"
	"visa-office-backend/token"
	"visa-office-backend/users/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UserController struct {
	UserRepo    repositories.UserRepository
	DB          *gorm.DB
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}
