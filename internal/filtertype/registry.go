package filtertype

import (
	"fmt"
	"strings"
)

// Registry holds the operator catalog and the tables that relate operators
// to each other. It is read-only after newRegistry returns.
type Registry struct {
	order    []*descriptor
	byName   map[string]FilterType
	bySuffix map[string]*descriptor

	opposite      map[string]string
	singleToMulti map[string]string
	multiToSingle map[string]string

	// jsonTypes maps a lower-case JSON type name to its applicable operators.
	jsonTypes map[string][]FilterType
}

// definition is the static description of one catalog entry.
type definition struct {
	name              string
	aliases           []string
	displayText       string
	displaySymbol     string
	urlSuffix         string
	dataValueRequired bool
	separator         string
	longDisplayText   string
	minOccurs         int
	maxOccurs         int
}

// relations lists the cross-reference tables, keyed by URL suffix, and the
// JSON-type applicability table, keyed by catalog name.
type relations struct {
	opposite      map[string]string
	singleToMulti map[string]string
	multiToSingle map[string]string
	jsonTypes     map[string][]string
}

// newRegistry builds a registry in two phases: descriptors are created and
// indexed first, then bound to the registry so lazy lookups see every entry.
func newRegistry(defs []definition, rel relations) (*Registry, error) {
	r := &Registry{
		byName:        make(map[string]FilterType),
		bySuffix:      make(map[string]*descriptor),
		opposite:      rel.opposite,
		singleToMulti: rel.singleToMulti,
		multiToSingle: rel.multiToSingle,
		jsonTypes:     make(map[string][]FilterType, len(rel.jsonTypes)),
	}

	// Phase 1: descriptors and indexes.
	for _, def := range defs {
		d := &descriptor{
			name:              def.name,
			displayText:       def.displayText,
			displaySymbol:     def.displaySymbol,
			longDisplayText:   def.longDisplayText,
			urlSuffix:         def.urlSuffix,
			dataValueRequired: def.dataValueRequired,
			separator:         def.separator,
			minOccurs:         def.minOccurs,
			maxOccurs:         def.maxOccurs,
		}

		for _, name := range append([]string{def.name}, def.aliases...) {
			if _, dup := r.byName[name]; dup {
				return nil, fmt.Errorf("duplicate filter type name %q", name)
			}
			r.byName[name] = d
		}
		if d.urlSuffix != "" {
			if _, dup := r.bySuffix[d.urlSuffix]; dup {
				return nil, fmt.Errorf("duplicate filter type suffix %q", d.urlSuffix)
			}
			r.bySuffix[d.urlSuffix] = d
		}
		r.order = append(r.order, d)
	}

	// Phase 2: bind every descriptor to the shared tables.
	for _, d := range r.order {
		d.reg = r
	}

	for _, table := range []map[string]string{r.opposite, r.singleToMulti, r.multiToSingle} {
		for from, to := range table {
			if r.bySuffix[from] == nil || r.bySuffix[to] == nil {
				return nil, fmt.Errorf("relation %q -> %q references an unknown suffix", from, to)
			}
		}
	}

	for jsonType, names := range rel.jsonTypes {
		list := make([]FilterType, 0, len(names))
		for _, name := range names {
			ft, ok := r.byName[name]
			if !ok {
				return nil, fmt.Errorf("json type %q references unknown filter type %q", jsonType, name)
			}
			list = append(list, ft)
		}
		r.jsonTypes[jsonType] = list
	}

	return r, nil
}

// follow looks suffix up in table and resolves the target suffix to a
// FilterType. It returns nil when either step misses.
func (r *Registry) follow(table map[string]string, suffix string) FilterType {
	if suffix == "" {
		return nil
	}
	target, ok := table[suffix]
	if !ok {
		return nil
	}
	return r.lookup(target)
}

func (r *Registry) lookup(suffix string) FilterType {
	d, ok := r.bySuffix[suffix]
	if !ok {
		return nil
	}
	return d
}

func (r *Registry) mustName(name string) FilterType {
	ft, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("filtertype: unknown catalog name %q", name))
	}
	return ft
}

// FromURLSuffix returns the operator with the given wire token.
func (r *Registry) FromURLSuffix(suffix string) (FilterType, bool) {
	ft := r.lookup(suffix)
	return ft, ft != nil
}

// ByName returns the operator registered under name or one of its aliases.
// Matching ignores case.
func (r *Registry) ByName(name string) (FilterType, bool) {
	ft, ok := r.byName[strings.ToUpper(name)]
	return ft, ok
}

// All returns every operator once, in catalog order. Aliases are not
// repeated.
func (r *Registry) All() []FilterType {
	out := make([]FilterType, len(r.order))
	for i, d := range r.order {
		out[i] = d
	}
	return out
}

// Names returns a copy of the name -> operator map, aliases included.
func (r *Registry) Names() map[string]FilterType {
	out := make(map[string]FilterType, len(r.byName))
	for k, v := range r.byName {
		out[k] = v
	}
	return out
}

// ForJSONType returns the operators applicable to a column of the given JSON
// type. When mvEnabled is set the missing-value operators are appended.
// Unknown types yield nil.
func (r *Registry) ForJSONType(jsonType string, mvEnabled bool) []FilterType {
	list, ok := r.jsonTypes[strings.ToLower(jsonType)]
	if !ok {
		return nil
	}
	out := append([]FilterType(nil), list...)
	if mvEnabled {
		out = append(out, r.lookup("hasmvvalue"), r.lookup("nomvvalue"))
	}
	return out
}

// DefaultForJSONType returns the operator a new filter on a column of the
// given JSON type starts with.
func (r *Registry) DefaultForJSONType(jsonType string) FilterType {
	switch strings.ToLower(jsonType) {
	case "date":
		return r.lookup("dateeq")
	case "string":
		return r.lookup("contains")
	default:
		return r.lookup("eq")
	}
}
