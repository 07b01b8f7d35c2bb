package matcher

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Render returns the display form of a value used in matcher
// messages. Strings are double-quoted with escaping, maps are
// rendered as "Map(k -> v, ...)" with entries sorted so that
// messages stay deterministic despite Go's randomized map
// iteration, and every other value uses fmt's default formatting.
func Render(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Map:
		return renderMap(rv)
	}

	return fmt.Sprintf("%v", v)
}

// renderMap renders a map value as "Map(k -> v, ...)". Keys and
// values inside the map are formatted plainly, without quoting.
func renderMap(rv reflect.Value) string {
	entries := make([]string, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, fmt.Sprintf(
			"%v -> %v",
			iter.Key().Interface(),
			iter.Value().Interface(),
		))
	}

	// Entries begin with the rendered key, so a plain sort
	// orders them by key.
	sort.Strings(entries)

	return "Map(" + strings.Join(entries, ", ") + ")"
}
