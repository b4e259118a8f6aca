package pinyin

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed words.txt
var defaultWordList []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded word list. The catalog
// is parsed lazily on first use and shared by all callers.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(bytes.NewReader(defaultWordList))
		if err != nil {
			panic(fmt.Sprintf("pinyin: embedded word list is unusable: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
