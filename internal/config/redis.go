package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient arma el cliente Redis usado para las retenciones
// temporales de asientos. Devuelve nil si el servidor no responde; los
// llamadores degradan a operar sin retenciones.
func NewRedisClient(env Env) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis no disponible en %s: %v (retenciones de asiento deshabilitadas)", env.RedisAddr, err)
		return nil
	}
	return client
}
