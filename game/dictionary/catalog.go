package dictionary

import (
	"fmt"
	"os"
	"sync"
)

// EnvDictFile names the environment variable that overrides the embedded
// word list for configurations that do not name a dictionary file.
const EnvDictFile = "WEAVER_DICT_FILE"

// Catalog caches loaded dictionaries so that many sessions playing the same
// configuration share one immutable Dictionary instance.
type Catalog struct {
	mu    sync.RWMutex
	cache map[string]*Dictionary
}

// NewCatalog creates an empty dictionary catalog.
func NewCatalog() *Catalog {
	return &Catalog{cache: make(map[string]*Dictionary)}
}

// Resolve returns the dictionary for a file path and word length, loading it
// on first use. An empty path resolves to the WEAVER_DICT_FILE environment
// variable when set, otherwise to the embedded default list.
func (c *Catalog) Resolve(path string, wordLength int) (*Dictionary, error) {
	if path == "" {
		path = os.Getenv(EnvDictFile)
	}
	key := fmt.Sprintf("%s:%d", path, wordLength)

	c.mu.RLock()
	if dict, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return dict, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if dict, ok := c.cache[key]; ok {
		return dict, nil
	}

	var (
		dict *Dictionary
		err  error
	)
	if path == "" {
		dict, err = Default(wordLength)
	} else {
		dict, err = Load(path, wordLength)
	}
	if err != nil {
		return nil, err
	}

	c.cache[key] = dict
	return dict, nil
}
