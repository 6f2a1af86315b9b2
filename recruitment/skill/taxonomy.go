package skill

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Abraxas-365/hirematch/pkg/logx"
	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomy []byte

// Category is a named, ordered group of canonical skills
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Taxonomy maps category names to canonical skills, in file order.
// It is never mutated after loading.
type Taxonomy struct {
	categories []Category
}

func NewTaxonomy(categories ...Category) *Taxonomy {
	cp := make([]Category, len(categories))
	for i, c := range categories {
		cp[i] = Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	return &Taxonomy{categories: cp}
}

// EmptyTaxonomy matches nothing
func EmptyTaxonomy() *Taxonomy {
	return &Taxonomy{}
}

func (t *Taxonomy) Categories() []Category {
	return t.categories
}

func (t *Taxonomy) IsEmpty() bool {
	return t.SkillCount() == 0
}

func (t *Taxonomy) SkillCount() int {
	n := 0
	for _, c := range t.categories {
		n += len(c.Skills)
	}
	return n
}

// ============================================================================
// Loading
// ============================================================================

// ParseTaxonomy decodes a YAML or JSON mapping of category -> skill list
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ErrTaxonomyLoadFailed(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrTaxonomyLoadFailed(errors.New("taxonomy document is empty"))
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrTaxonomyLoadFailed(errors.New("taxonomy root must be a mapping"))
	}

	categories := make([]Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var skills []string
		if err := value.Decode(&skills); err != nil {
			return nil, ErrTaxonomyLoadFailed(fmt.Errorf("category %q: %w", key.Value, err)).
				WithDetail("category", key.Value).
				WithDetail("line", value.Line)
		}
		categories = append(categories, Category{Name: key.Value, Skills: skills})
	}

	return &Taxonomy{categories: categories}, nil
}

// LoadTaxonomy reads a taxonomy file from disk
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrTaxonomyLoadFailed(err).WithDetail("path", path)
	}
	tax, err := ParseTaxonomy(data)
	if err != nil {
		return nil, err
	}
	return tax, nil
}

// DefaultTaxonomy returns the taxonomy bundled with the binary
func DefaultTaxonomy() *Taxonomy {
	tax, err := ParseTaxonomy(defaultTaxonomy)
	if err != nil {
		logx.Errorf("bundled skill taxonomy is invalid: %v", err)
		return EmptyTaxonomy()
	}
	return tax
}

// LoadTaxonomyOrEmpty loads path, or the bundled taxonomy when path is empty.
// A load failure is logged and yields an empty taxonomy.
func LoadTaxonomyOrEmpty(path string) *Taxonomy {
	if path == "" {
		return DefaultTaxonomy()
	}

	tax, err := LoadTaxonomy(path)
	if err != nil {
		logx.Warnf("Skill taxonomy unavailable, matching no skills: %v", err)
		return EmptyTaxonomy()
	}

	logx.Infof("Loaded skill taxonomy from %s (%d categories, %d skills)", path, len(tax.categories), tax.SkillCount())
	return tax
}
