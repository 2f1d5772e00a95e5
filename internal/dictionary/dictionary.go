// Package dictionary provides the static data tables the engine depends on:
// synonym mappings, category membership sets, stopwords and curated word
// lists. Tables are stored as JSON files and embedded at compile time; user
// overrides can be merged on top at startup. Accessors return shared cached
// maps, and MergeOverrides mutates those same maps, so references captured
// at init observe overrides. Merge before serving any traffic; tables are
// treated as immutable afterwards.
package dictionary

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed data/*.json
var dataFiles embed.FS

// Known table names.
const (
	TableSynonyms       = "synonyms"
	TableHardSkills     = "hard_skills"
	TableTools          = "tools"
	TableSoftSkills     = "soft_skills"
	TableRoles          = "roles"
	TableStopwords      = "stopwords"
	TableNoiseWords     = "noise_words"
	TableWeakVerbs      = "weak_verbs"
	TableWordSynonyms   = "word_synonyms"
	TableActionVerbs    = "action_verbs"
	TableSectionHeaders = "section_headers"
)

var (
	cacheMu    sync.RWMutex
	listCache  = make(map[string][]string)
	setCache   = make(map[string]map[string]bool)
	tableCache = make(map[string]map[string]string)
	multiCache = make(map[string]map[string][]string)
)

// List returns a table stored as a JSON string array.
func List(name string) ([]string, error) {
	cacheMu.RLock()
	if v, ok := listCache[name]; ok {
		cacheMu.RUnlock()
		return v, nil
	}
	cacheMu.RUnlock()

	data, err := readTable(name)
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("dictionary table %q is not a string list: %w", name, err)
	}

	cacheMu.Lock()
	listCache[name] = out
	cacheMu.Unlock()
	return out, nil
}

// Table returns a table stored as a JSON string-to-string object.
func Table(name string) (map[string]string, error) {
	cacheMu.RLock()
	if v, ok := tableCache[name]; ok {
		cacheMu.RUnlock()
		return v, nil
	}
	cacheMu.RUnlock()

	data, err := readTable(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("dictionary table %q is not a string map: %w", name, err)
	}

	cacheMu.Lock()
	tableCache[name] = out
	cacheMu.Unlock()
	return out, nil
}

// MultiTable returns a table stored as a JSON string-to-string-list object.
func MultiTable(name string) (map[string][]string, error) {
	cacheMu.RLock()
	if v, ok := multiCache[name]; ok {
		cacheMu.RUnlock()
		return v, nil
	}
	cacheMu.RUnlock()

	data, err := readTable(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("dictionary table %q is not a multi-value map: %w", name, err)
	}

	cacheMu.Lock()
	multiCache[name] = out
	cacheMu.Unlock()
	return out, nil
}

// Set returns a list table as a membership set. Keys are lowercased so
// membership checks are case-insensitive regardless of how the data file
// cases its entries. The returned map is the shared cached instance.
func Set(name string) (map[string]bool, error) {
	cacheMu.RLock()
	if v, ok := setCache[name]; ok {
		cacheMu.RUnlock()
		return v, nil
	}
	cacheMu.RUnlock()

	items, err := List(name)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}

	cacheMu.Lock()
	setCache[name] = set
	cacheMu.Unlock()
	return set, nil
}

// MustSet returns a membership set, panicking if the embedded table is
// missing or malformed. Use only for tables shipped with the binary.
func MustSet(name string) map[string]bool {
	set, err := Set(name)
	if err != nil {
		panic(fmt.Sprintf("dictionary: %v", err))
	}
	return set
}

// MustTable returns a string map table, panicking on failure.
func MustTable(name string) map[string]string {
	table, err := Table(name)
	if err != nil {
		panic(fmt.Sprintf("dictionary: %v", err))
	}
	return table
}

// MustMultiTable returns a multi-value table, panicking on failure.
func MustMultiTable(name string) map[string][]string {
	table, err := MultiTable(name)
	if err != nil {
		panic(fmt.Sprintf("dictionary: %v", err))
	}
	return table
}

// MergeOverrides loads every *.json file in dir and merges its entries over
// the corresponding embedded table. The file stem is the table name. List
// overrides append unseen entries; map overrides replace per key. Merging
// mutates the cached maps in place, so consumers that captured a table at
// init see the overrides too. Call before any scoring happens. Files
// should be schema-validated by the caller before this is invoked.
func MergeOverrides(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read dictionary override dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".json")]
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read override %s: %w", entry.Name(), err)
		}
		if err := mergeOverride(name, data); err != nil {
			return err
		}
	}
	return nil
}

func mergeOverride(name string, data []byte) error {
	// Try each supported shape in turn; the schema admits all three.
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		base, err := List(name)
		if err != nil {
			base = nil
		}
		// Warm the set cache before merging so the in-place update below
		// reaches consumers that hold the set rather than the list.
		set, err := Set(name)
		if err != nil {
			set = nil
		}
		seen := make(map[string]bool, len(base))
		merged := make([]string, 0, len(base)+len(asList))
		for _, item := range base {
			seen[item] = true
			merged = append(merged, item)
		}
		for _, item := range asList {
			if !seen[item] {
				seen[item] = true
				merged = append(merged, item)
			}
		}
		cacheMu.Lock()
		listCache[name] = merged
		if set == nil {
			set = make(map[string]bool, len(merged))
			setCache[name] = set
		}
		for _, item := range merged {
			set[strings.ToLower(item)] = true
		}
		cacheMu.Unlock()
		return nil
	}

	var asTable map[string]string
	if err := json.Unmarshal(data, &asTable); err == nil {
		base, err := Table(name)
		cacheMu.Lock()
		if err != nil {
			base = map[string]string{}
			tableCache[name] = base
		}
		for k, v := range asTable {
			base[k] = v
		}
		cacheMu.Unlock()
		return nil
	}

	var asMulti map[string][]string
	if err := json.Unmarshal(data, &asMulti); err == nil {
		base, err := MultiTable(name)
		cacheMu.Lock()
		if err != nil {
			base = map[string][]string{}
			multiCache[name] = base
		}
		for k, v := range asMulti {
			base[k] = v
		}
		cacheMu.Unlock()
		return nil
	}

	return fmt.Errorf("dictionary override %q has an unsupported shape", name)
}

func readTable(name string) ([]byte, error) {
	data, err := dataFiles.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("dictionary table %q not found: %w", name, err)
	}
	return data, nil
}
