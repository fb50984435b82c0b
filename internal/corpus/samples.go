package corpus

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed samples/*.json
var samples embed.FS

// SampleKeys lists the bundled sample corpora.
func SampleKeys() []string {
	entries, err := samples.ReadDir("samples")
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(keys)
	return keys
}

// SampleJSON returns the raw JSON of a bundled sample corpus.
func SampleJSON(key string) ([]byte, error) {
	data, err := samples.ReadFile(path.Join("samples", key+".json"))
	if err != nil {
		return nil, fmt.Errorf("no sample corpus %q: %w", key, err)
	}
	return data, nil
}

// Sample parses a bundled sample corpus.
func Sample(key string, shape Shape) (*Corpus, error) {
	data, err := SampleJSON(key)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return New(key, shape, doc.Metadata, doc.Verses), nil
}

// SampleLibrary is the default library built from the bundled samples.
func SampleLibrary() (*Library, error) {
	tk, err := Sample("thirukkural", ShapeAphorism)
	if err != nil {
		return nil, err
	}
	kr, err := Sample("kamba_ramayanam", ShapeNarrative)
	if err != nil {
		return nil, err
	}
	return NewLibrary(tk, kr), nil
}
