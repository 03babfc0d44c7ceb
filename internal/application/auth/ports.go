package auth

import (
	"context"
	"time"
)

// TokenBlacklist guarda tokens revogados até a expiração natural de cada um.
// Entradas têm TTL: o token some da lista quando deixaria de valer de qualquer
// forma, mantendo o conjunto limitado ao volume de logouts recentes.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
