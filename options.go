// Copyright 2026 The configster Authors
// SPDX-License-Identifier: BSD-3-Clause

package configster

import (
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/log"
)

// Get returns the primary value of the last entry with the given option
// name. If there is no such entry, Get returns the empty string.
func (opts Options) Get(option string) string {
	for i := len(opts) - 1; i >= 0; i-- {
		if opts[i].Option == option {
			return opts[i].Value.Primary
		}
	}
	return ""
}

// Find returns all entries with the given option name, in file order.
func (opts Options) Find(option string) []OptionProperties {
	var found []OptionProperties
	for _, o := range opts {
		if o.Option == option {
			found = append(found, o)
		}
	}
	return found
}

// Has reports whether any entry has the given option name.
func (opts Options) Has(option string) bool {
	for _, o := range opts {
		if o.Option == option {
			return true
		}
	}
	return false
}

// ParseFiles parses the configuration files at the given paths and
// concatenates their entries in argument order, so in combination with Get
// later paths take precedence. Each file is parsed independently with the
// same attribute delimiter. Missing files are skipped; any other failure
// aborts the whole set with no partial result.
func ParseFiles(ctx context.Context, delim rune, paths ...string) (Options, error) {
	var merged Options
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			log.Debugf(ctx, "configster: %s does not exist, skipping", p)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("parse config files: %w", err)
		}
		opts, err := Parse(f, delim)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return nil, fmt.Errorf("parse config files: %s: %w", p, err)
		}
		merged = append(merged, opts...)
	}
	return merged, nil
}
