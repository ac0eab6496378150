package config

import (
	"fmt"
	"sort"
	"strings"
)

// Overrides collects repeated -set key=value flags for the drainage
// section of the config file.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	pairs := make([]string, 0, len(o))
	for k, v := range o {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}

// Apply layers the overrides onto f.Drainage. f is left unchanged on error.
func (o Overrides) Apply(f *File) error {
	if len(o) == 0 {
		return nil
	}
	d, err := f.Drainage.Override(o)
	if err != nil {
		return err
	}
	f.Drainage = d
	return nil
}
