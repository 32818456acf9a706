package parser

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"helang/interpreter-go/pkg/ast"
)

// DefaultCacheSize is the number of distinct source units a Cache retains.
const DefaultCacheSize = 128

// Cache memoises parse results keyed by source text. Failed parses are not
// cached. The returned statements are shared and must not be mutated.
type Cache struct {
	entries *lru.Cache
}

func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("parser: cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Parse returns the cached statements for source, parsing on a miss.
func (c *Cache) Parse(filename, source string) ([]ast.Statement, error) {
	if cached, ok := c.entries.Get(source); ok {
		return cached.([]ast.Statement), nil
	}
	program, err := ParseProgram(filename, []byte(source))
	if err != nil {
		return nil, err
	}
	c.entries.Add(source, program.Body)
	return program.Body, nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) Purge() {
	c.entries.Purge()
}
