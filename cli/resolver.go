package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys name flags without the leading dashes. Nested mappings are joined to
// their parent key with '-', and '_' may stand in for '-':
//
//	log-level: debug
//	log:
//	  format: json
//	  pretty: false
//	eval:
//	  max_depth: 5000
//
// Sequences become comma-separated lists. Command-line flags override values
// from the file.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		return nil, err
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// flatten copies the leaves of m into c under their joined keys.
func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := normalizeKey(k)
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := v.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = v
	}
}

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.TrimSpace(k), "_", "-")
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver]. A flag of a subcommand may be set under
// the command's path, as in "eval-max-depth", or by its bare name.
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	keys := []string{flag.Name}

	if parent != nil && parent.Command != nil {
		if path := commandPath(parent.Command); path != "" {
			keys = append([]string{path + "-" + flag.Name}, keys...)
		}
	}

	for _, key := range keys {
		if v, ok := c[normalizeKey(key)]; ok {
			return scalar(v), nil
		}
	}

	return nil, nil
}

// commandPath joins the names of the commands from the root to n with '-'.
func commandPath(n *kong.Node) string {
	var names []string

	for ; n != nil; n = n.Parent {
		if n.Type == kong.CommandNode {
			names = append([]string{n.Name}, names...)
		}
	}

	return strings.Join(names, "-")
}

// scalar converts a decoded YAML value to the form kong parses: strings and
// booleans as they are, numbers as strings, and sequences as comma-separated
// strings.
func scalar(v any) any {
	switch v := v.(type) {
	case nil, string, bool:
		return v

	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(scalar(e))
		}

		return strings.Join(parts, ",")

	default:
		return fmt.Sprint(v)
	}
}
