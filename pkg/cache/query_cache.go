package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Clock abstrai a fonte de tempo do cache para que a expiração por TTL
// seja testável sem esperas reais.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type entry struct {
	value    any
	expireAt time.Time
}

// QueryCache memoiza resultados de consultas por chave determinística com
// TTL por entrada. Chamadas concorrentes para a mesma chave ausente são
// coalescidas em uma única execução do compute (singleflight); falhas
// nunca são armazenadas. A expiração é preguiçosa: entradas vencidas são
// removidas no próximo lookup. Não há limite de tamanho — a cardinalidade
// de chaves é baixa (um conjunto por combinação ativa de filtros).
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   Clock
	group   singleflight.Group

	hits   uint64
	misses uint64
}

// Stats expõe contadores de acerto/erro do cache para logs e healthcheck.
type Stats struct {
	Size   int    `json:"size"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

func New() *QueryCache {
	return NewWithClock(realClock{})
}

// NewWithClock cria o cache com um relógio injetado (para testes).
func NewWithClock(clock Clock) *QueryCache {
	return &QueryCache{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get retorna o valor da chave se presente e dentro do TTL.
func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	if c.clock.Now().After(e.expireAt) {
		// Vencida: remove preguiçosamente e reporta miss
		c.mu.Lock()
		if current, still := c.entries[key]; still && current.expireAt.Equal(e.expireAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	atomic.AddUint64(&c.hits, 1)
	return e.value, true
}

// GetOrCompute retorna o valor em cache para a chave ou executa compute
// exatamente uma vez para preenchê-lo. Se compute falhar, nada é
// armazenado e o erro é propagado para todos os chamadores coalescidos —
// a próxima chamada volta ao armazenamento, nunca a uma falha velha.
func (c *QueryCache) GetOrCompute(key string, ttl time.Duration, compute func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Revalidar dentro do singleflight: outro chamador pode ter
		// preenchido a chave enquanto aguardávamos o lock do grupo
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		value, err := compute()
		if err != nil {
			return nil, err
		}

		c.set(key, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (c *QueryCache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{
		value:    value,
		expireAt: c.clock.Now().Add(ttl),
	}
	c.mu.Unlock()
}

// Invalidate remove uma chave do cache.
func (c *QueryCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) Stats() Stats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	return Stats{
		Size:   size,
		Hits:   atomic.LoadUint64(&c.hits),
		Misses: atomic.LoadUint64(&c.misses),
	}
}
