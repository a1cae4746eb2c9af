package emotions

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Group is a (category, energy) bucket of catalog ids.
type Group struct {
	Category Category
	Energy   Energy
	IDs      []string
}

// Label renders the group the way the seed summary prints it,
// e.g. "Positive (high energy)".
func (g Group) Label() string {
	title := cases.Title(language.English)
	return fmt.Sprintf("%s (%s energy)", title.String(string(g.Category)), g.Energy)
}

func (g Group) String() string {
	return g.Label() + ": " + strings.Join(g.IDs, ", ")
}

// Summarize buckets the records by category and energy. Groups appear in the
// order their first member appears in list.
func Summarize(list []Emotion) []Group {
	var groups []Group
	index := map[[2]string]int{}

	for _, e := range list {
		key := [2]string{string(e.Category), string(e.Energy)}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Category: e.Category, Energy: e.Energy})
		}
		groups[i].IDs = append(groups[i].IDs, e.ID)
	}
	return groups
}

type catalogFile struct {
	Collection string    `yaml:"collection"`
	Emotions   []Emotion `yaml:"emotions"`
}

// WriteYAML exports list under the given collection name.
func WriteYAML(w io.Writer, collection string, list []Emotion) error {
	out, err := yaml.Marshal(catalogFile{Collection: collection, Emotions: list})
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// ReadYAML parses a catalog previously written by WriteYAML and validates it.
func ReadYAML(r io.Reader) (string, []Emotion, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return "", nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(f.Emotions); err != nil {
		return "", nil, err
	}
	return f.Collection, f.Emotions, nil
}
