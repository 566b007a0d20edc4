package auth

import (
	"sync"
	"time"

	"github.com/botica-dev/botica-api/pkg/metrics"
)

// TokenBlacklist lista negra de tokens JWT revocados por logout, en memoria de proceso.
// Un token presente se considera revocado sin mirar su expiración; el barrido
// periódico es la única vía de eliminación (un token expirado que siga en el set
// es inofensivo: fallaría igual la validación de firma/expiración).
//
// Acceso concurrente protegido con mutex: múltiples goroutines de request pueden
// revocar/consultar a la vez que corre el barrido.
type TokenBlacklist struct {
	mu       sync.Mutex
	entradas map[string]int64 // token -> expiración epoch segundos

	interval time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewTokenBlacklist construye la lista negra. sweepInterval es el periodo del barrido.
func NewTokenBlacklist(sweepInterval time.Duration) *TokenBlacklist {
	return &TokenBlacklist{
		entradas: make(map[string]int64),
		interval: sweepInterval,
		done:     make(chan struct{}),
	}
}

// Add inserta o sobreescribe la entrada incondicionalmente.
func (b *TokenBlacklist) Add(token string, expiraEpoch int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entradas[token] = expiraEpoch
}

// Contains devuelve true si existe una entrada para ese token exacto.
// No consulta la expiración: eso es trabajo del barrido.
func (b *TokenBlacklist) Contains(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.entradas[token]
	return ok
}

// Sweep elimina las entradas cuya expiración es anterior o igual a ahora.
// Devuelve cuántas se eliminaron.
func (b *TokenBlacklist) Sweep(ahora time.Time) int {
	limite := ahora.Unix()
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for token, exp := range b.entradas {
		if exp <= limite {
			delete(b.entradas, token)
			n++
		}
	}
	metrics.TokensEnListaNegra.Set(float64(len(b.entradas)))
	return n
}

// Len cantidad de entradas vigentes (incluye expiradas aún no barridas).
func (b *TokenBlacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entradas)
}

// Start lanza la goroutine del barrido periódico. Llamar una sola vez al arrancar.
func (b *TokenBlacklist) Start() {
	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.Sweep(time.Now())
			case <-b.done:
				return
			}
		}
	}()
}

// Stop detiene el barrido. Seguro de llamar más de una vez.
func (b *TokenBlacklist) Stop() {
	b.once.Do(func() { close(b.done) })
}
