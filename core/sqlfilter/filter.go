// Package sqlfilter rewrites SQL text for a database vendor using the regexp/replacement rules
// declared in a properties file (build.properties):
//
//	regexp.<vendor>.list=<id1>,<id2>
//	regexp.<vendor>.<id>=<pattern>
//	replace.<vendor>.<id>=<replacement, \1 being the first group>
//
// Rules are applied in list order to every filtered line.
package sqlfilter

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/magiconair/properties"
)

// DEFAULT_VENDOR is used when no vendor name is given.
const DEFAULT_VENDOR = "mysql"

// Property key formats, filled with the vendor name and the rule id.
const (
	LIST_KEY_FORMAT    = "regexp.%s.list"
	REGEXP_KEY_FORMAT  = "regexp.%s.%s"
	REPLACE_KEY_FORMAT = "replace.%s.%s"
)

// PropertySource gives access to string properties. *properties.Properties satisfies it.
type PropertySource interface {
	GetString(key string, def string) string
}

// Opener opens the properties stream. The stream is always closed by the caller of Opener.
type Opener func() (io.ReadCloser, error)

// Rule is one pattern/replacement pair.
type Rule struct {
	ID          string
	Pattern     *regexp.Regexp
	Template    string // as written in the properties, with \N back references
	Replacement string // Template translated to the regexp package syntax
}

func (r *Rule) apply(line string) string {
	return r.Pattern.ReplaceAllString(line, r.Replacement)
}

// Filter holds the ordered rules of one vendor. It is safe for concurrent use once built.
type Filter struct {
	vendor string
	rules  []*Rule
}

// New reads the rules of vendor from src. An empty vendor means DEFAULT_VENDOR. Missing keys are
// read as empty strings; a nil src, or a nil *properties.Properties, gives a filter without rules.
func New(src PropertySource, vendor string) (*Filter, error) {
	if vendor == "" {
		vendor = DEFAULT_VENDOR
	}

	filter := &Filter{vendor: vendor}
	if src == nil {
		return filter, nil
	}
	if props, ok := src.(*properties.Properties); ok && props == nil {
		return filter, nil
	}

	list := src.GetString(fmt.Sprintf(LIST_KEY_FORMAT, vendor), "")
	for _, id := range strings.Split(list, ",") {
		if strings.TrimSpace(id) == "" {
			continue
		}

		pattern := src.GetString(fmt.Sprintf(REGEXP_KEY_FORMAT, vendor, id), "")
		template := src.GetString(fmt.Sprintf(REPLACE_KEY_FORMAT, vendor, id), "")

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for rule %s.%s: %w", vendor, id, err)
		}

		filter.rules = append(filter.rules, &Rule{
			ID:          id,
			Pattern:     re,
			Template:    template,
			Replacement: TranslateReplacement(template),
		})
	}

	return filter, nil
}

// Load reads a properties stream (ISO-8859-1, no ${} expansion) and builds the filter of vendor.
// The stream is closed whatever happens.
func Load(open Opener, vendor string) (*Filter, error) {
	props, err := readProperties(open)
	if err != nil {
		return nil, err
	}
	return New(props, vendor)
}

// LoadFile is Load over a file on disk.
func LoadFile(path string, vendor string) (*Filter, error) {
	return Load(fileOpener(path), vendor)
}

// Vendor returns the vendor the rules were loaded for.
func (f *Filter) Vendor() string {
	return f.vendor
}

// Rules returns the loaded rules in application order.
func (f *Filter) Rules() []*Rule {
	return append([]*Rule(nil), f.rules...)
}

// Filter applies every rule in order to line.
func (f *Filter) Filter(line string) string {
	for _, rule := range f.rules {
		line = rule.apply(line)
	}
	return line
}

// FilterOptional is Filter for an optional line: nil stays nil.
func (f *Filter) FilterOptional(line *string) *string {
	if line == nil {
		return nil
	}
	filtered := f.Filter(*line)
	return &filtered
}

func fileOpener(path string) Opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

func readProperties(open Opener) (*properties.Properties, error) {
	in, err := open()
	if err != nil {
		return nil, fmt.Errorf("error opening properties: %w", err)
	}
	defer in.Close()

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("error reading properties: %w", err)
	}

	loader := &properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(content)
	if err != nil {
		return nil, fmt.Errorf("error parsing properties: %w", err)
	}

	return props, nil
}
