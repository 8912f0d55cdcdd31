package utils

import "github.com/dgraph-io/ristretto"

// PrimeCache memoises IsPrime. Entries may be evicted or not yet admitted,
// in which case the answer is recomputed; it is always equal to IsPrime.
type PrimeCache struct {
	cache *ristretto.Cache
}

func NewPrimeCache(maxEntries int64) (*PrimeCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &PrimeCache{cache: cache}, nil
}

func (pc *PrimeCache) IsPrime(n int) bool {
	if prime, found := pc.cache.Get(n); found {
		return prime.(bool)
	}
	prime := IsPrime(n)
	pc.cache.Set(n, prime, 1)
	return prime
}

func (pc *PrimeCache) Close() {
	pc.cache.Close()
}
