package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads section overrides from a YAML file and merges them into the
// defaults. An empty path returns the defaults.
//
//	hero:
//	  title: Run a Leaner Warehouse with
//	  features[0]: Live stock counts
//	pricing:
//	  plan1Price: $249
func Load(path string) (Site, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read content file: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return Site{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse merges the YAML overrides in data into the defaults.
func Parse(data []byte) (Site, error) {
	var doc map[string]map[string]any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Site{}, fmt.Errorf("decode overrides: %w", err)
	}
	site := Defaults()
	for section, overrides := range doc {
		if err := site.Override(section, overrides); err != nil {
			return Site{}, err
		}
	}
	return site, nil
}

// Sections names the sections of a content file in page order.
var Sections = []string{"hero", "features", "pricing", "contact", "footer"}

// Override merges overrides into one section of the site, named as in the
// content file.
func (s *Site) Override(section string, overrides map[string]any) error {
	dst, err := s.section(section)
	if err != nil {
		return err
	}
	if err := Merge(dst, overrides); err != nil {
		return fmt.Errorf("section %s: %w", section, err)
	}
	return nil
}

func (s *Site) section(name string) (any, error) {
	switch name {
	case "hero":
		return &s.Hero, nil
	case "features":
		return &s.Features, nil
	case "pricing":
		return &s.Pricing, nil
	case "contact":
		return &s.Contact, nil
	case "footer":
		return &s.Footer, nil
	}
	return nil, fmt.Errorf("%w: section %q", ErrUnknownKey, name)
}

// WriteKeys lists, per section, the keys a content file may override.
func WriteKeys(w io.Writer) error {
	site := Defaults()
	for _, name := range Sections {
		dst, err := site.section(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
			return err
		}
		for _, key := range Keys(dst) {
			if _, err := fmt.Fprintf(w, "  %s\n", key); err != nil {
				return err
			}
		}
	}
	return nil
}
