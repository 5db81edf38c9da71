package ruled

import (
	"fmt"
	"io"
	"sort"
)

// Config holds the settings of the Parser driver under dotted keys.
// Settings are typed: a key that holds a bool can't be given an int,
// and reading a setting as the wrong type or reading a key that was
// never set are programming errors that panic.
type Config struct {
	settings map[string]*setting
}

// NewConfig creates a new configuration object primed with all the
// default values expected by the Parser driver.
func NewConfig() *Config {
	c := &Config{settings: make(map[string]*setting)}
	// fail matches that don't consume the whole input
	c.SetBool("parser.require_end", false)
	// name of the file the input came from, shown in locations
	c.SetString("parser.input_file", "")
	// log every rule applied by the parser driver
	c.SetBool("trace.enabled", false)
	// name of the logger the trace goes to
	c.SetString("trace.name", "ruled")
	return c
}

func (c *Config) SetBool(path string, v bool)     { c.store(path, settingKind_Bool, v) }
func (c *Config) SetInt(path string, v int)       { c.store(path, settingKind_Int, v) }
func (c *Config) SetString(path string, v string) { c.store(path, settingKind_String, v) }

func (c *Config) GetBool(path string) bool     { return lookup[bool](c, path, settingKind_Bool) }
func (c *Config) GetInt(path string) int       { return lookup[int](c, path, settingKind_Int) }
func (c *Config) GetString(path string) string { return lookup[string](c, path, settingKind_String) }

// Debug writes all the settings to `w`, one per line, sorted by key
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := make([]string, 0, len(c.settings))
	width := 0
	for k := range c.settings {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		s := c.settings[k]
		fmt.Fprintf(w, "%-*s : %v (%s)\n", width, k, s.value, s.kind)
	}
}

type settingKind int

const (
	settingKind_Bool settingKind = iota + 1
	settingKind_Int
	settingKind_String
)

func (k settingKind) String() string {
	return map[settingKind]string{
		settingKind_Bool:   "bool",
		settingKind_Int:    "int",
		settingKind_String: "string",
	}[k]
}

type setting struct {
	kind  settingKind
	value any
}

func (c *Config) store(path string, kind settingKind, v any) {
	s, ok := c.settings[path]
	if !ok {
		s = &setting{kind: kind}
		c.settings[path] = s
	}
	if s.kind != kind {
		panic(fmt.Sprintf("Can't assign `%s` to `%s` setting `%s`", kind, s.kind, path))
	}
	s.value = v
}

func lookup[T any](c *Config, path string, kind settingKind) T {
	s, ok := c.settings[path]
	if !ok {
		panic(fmt.Sprintf("%s setting `%s` does not exist", kind, path))
	}
	if s.kind != kind {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` setting `%s`", kind, s.kind, path))
	}
	return s.value.(T)
}
