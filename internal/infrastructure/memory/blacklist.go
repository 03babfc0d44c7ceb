// Package memory implementa a blacklist de tokens em memória, para
// desenvolvimento e testes (processo único; sem REDIS_URL configurado).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/estoque-pro/estoque-api/internal/application/auth"
)

var _ auth.TokenBlacklist = (*Blacklist)(nil)

// Blacklist guarda tokens revogados com o instante de expiração de cada um.
// Um janitor remove entradas vencidas periodicamente; a leitura também checa
// a expiração, então uma entrada vencida nunca é reportada como revogada.
type Blacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	stop    chan struct{}
}

// NewBlacklist constrói a blacklist e inicia o janitor.
func NewBlacklist() *Blacklist {
	b := &Blacklist{
		entries: make(map[string]time.Time),
		stop:    make(chan struct{}),
	}
	go b.janitor()
	return b
}

// Add marca o token como revogado até now+ttl.
func (b *Blacklist) Add(_ context.Context, token string, ttl time.Duration) error {
	b.mu.Lock()
	b.entries[token] = time.Now().Add(ttl)
	b.mu.Unlock()
	return nil
}

// IsBlacklisted informa se o token está revogado e ainda não expirou.
func (b *Blacklist) IsBlacklisted(_ context.Context, token string) (bool, error) {
	b.mu.RLock()
	expiresAt, ok := b.entries[token]
	b.mu.RUnlock()
	return ok && time.Now().Before(expiresAt), nil
}

// Close para o janitor.
func (b *Blacklist) Close() error {
	close(b.stop)
	return nil
}

func (b *Blacklist) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-b.stop:
			return
		case now := <-ticker.C:
			b.mu.Lock()
			for token, expiresAt := range b.entries {
				if now.After(expiresAt) {
					delete(b.entries, token)
				}
			}
			b.mu.Unlock()
		}
	}
}
