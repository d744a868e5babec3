package vocabulary

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// Vocabulary is the set of accepted spellings for one name category
// (first names or last names). Entries are lower-cased, trimmed and unique.
// Lookups are read-only and safe for concurrent use; the mutation path
// (custom names taught at runtime) is guarded by the mutex.
type Vocabulary struct {
	mu      sync.RWMutex
	set     map[string]struct{}
	entries []string // kept sorted so candidate ranking is reproducible
}

// New builds a vocabulary from raw names. Blank entries are dropped,
// everything else is trimmed, lower-cased and deduplicated.
func New(names []string) *Vocabulary {
	v := &Vocabulary{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := v.set[n]; ok {
			continue
		}
		v.set[n] = struct{}{}
		v.entries = append(v.entries, n)
	}
	sort.Strings(v.entries)
	return v
}

// LoadCSV reads the named column from a reference CSV file. Reference name
// lists can run to hundreds of thousands of rows, so the file is mapped
// rather than buffered. Header matching is case-insensitive.
func LoadCSV(path, column string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat vocabulary: %w", err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("vocabulary %s is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap vocabulary: %w", err)
	}
	defer m.Unmap()

	r := csv.NewReader(bytes.NewReader(m))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read vocabulary header: %w", err)
	}
	col := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("vocabulary %s has no %q column", path, column)
	}

	var names []string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read vocabulary row: %w", err)
		}
		if col < len(rec) {
			names = append(names, rec[col])
		}
	}
	return New(names), nil
}

// Contains reports whether the lower-cased token is a known spelling.
func (v *Vocabulary) Contains(token string) bool {
	v.mu.RLock()
	_, ok := v.set[token]
	v.mu.RUnlock()
	return ok
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.set)
}

// Range calls fn for every entry in lexicographic order.
func (v *Vocabulary) Range(fn func(name string)) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, e := range v.entries {
		fn(e)
	}
}

// Add inserts a name, keeping the entry order sorted. Returns false when the
// name was blank or already present.
func (v *Vocabulary) Add(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.set[name]; ok {
		return false
	}
	v.set[name] = struct{}{}
	i := sort.SearchStrings(v.entries, name)
	v.entries = append(v.entries, "")
	copy(v.entries[i+1:], v.entries[i:])
	v.entries[i] = name
	return true
}

// Remove deletes a name if present.
func (v *Vocabulary) Remove(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.set[name]; !ok {
		return
	}
	delete(v.set, name)
	i := sort.SearchStrings(v.entries, name)
	if i < len(v.entries) && v.entries[i] == name {
		v.entries = append(v.entries[:i], v.entries[i+1:]...)
	}
}
