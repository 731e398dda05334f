// Package recipe describes Markdown documents declaratively in YAML and
// replays them onto an mdwizard.Builder.
//
// A recipe is a title and an ordered list of blocks:
//
//	title: Release Notes
//	blocks:
//	  - type: p
//	    text: Highlights of this release.
//	  - type: table
//	    columns: [Change, Impact]
//	    rows:
//	      - [Faster tables, high]
//	    align: [left, right]
//	  - type: badge
//	    kind: github
//	    params: [alice, notes]
//
// Each block type maps to one builder operation; see the Type* constants.
package recipe

import (
	"errors"
	"fmt"
	"os"

	mdwizard "github.com/alnah/go-mdwizard"
	"github.com/alnah/go-mdwizard/internal/yamlutil"
)

// Sentinel errors for recipe operations.
var (
	ErrRead    = errors.New("failed to read recipe")
	ErrParse   = errors.New("failed to parse recipe")
	ErrInvalid = errors.New("invalid recipe")
)

// Block types.
const (
	TypeParagraph      = "p"
	TypeH1             = "h1"
	TypeH2             = "h2"
	TypeH3             = "h3"
	TypeBlockquote     = "blockquote"
	TypeRule           = "hr"
	TypeCode           = "code"
	TypeTable          = "table"
	TypeBullets        = "bullets"
	TypeOrdered        = "ordered"
	TypeCollapsible    = "collapsible"
	TypeEndCollapsible = "end-collapsible"
	TypeBadge          = "badge"
	TypeBreak          = "br"
	TypeWrite          = "write"
	TypeWriteln        = "writeln"
	TypeLink           = "link"
	TypeImage          = "image"
)

// Recipe is a document description.
type Recipe struct {
	Title  string  `yaml:"title" validate:"max=200"`
	Blocks []Block `yaml:"blocks" validate:"required,min=1,dive"`
}

// Block is one builder call. Only the fields relevant to Type are read.
type Block struct {
	Type      string     `yaml:"type" validate:"required,oneof=p h1 h2 h3 blockquote hr code table bullets ordered collapsible end-collapsible badge br write writeln link image"`
	Text      string     `yaml:"text"`
	Lang      string     `yaml:"lang" validate:"max=50"`
	Items     []string   `yaml:"items"`
	Levels    []int      `yaml:"levels" validate:"dive,min=0,max=20"`
	Columns   []string   `yaml:"columns"`
	Rows      [][]string `yaml:"rows"`
	Align     []string   `yaml:"align"`
	Underline bool       `yaml:"underline"`
	Collapsed bool       `yaml:"collapsed"`
	Level     int        `yaml:"level" validate:"min=0,max=20"`
	URL       string     `yaml:"url"`
	Title     string     `yaml:"title"`
	Kind      string     `yaml:"kind"`
	Params    []string   `yaml:"params" validate:"max=2"`
}

// Load reads and parses a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- recipe path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes YAML into a Recipe and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yamlutil.Decode(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, yamlutil.Describe(err))
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Render replays the recipe onto a new builder and returns its Markdown.
func (r *Recipe) Render(opts ...mdwizard.Option) (string, error) {
	b := mdwizard.New(opts...)
	if err := r.Apply(b); err != nil {
		return "", err
	}
	return b.Markdown(), nil
}

// Apply replays the recipe onto b. A non-empty Title becomes an underlined
// H1 before the first block.
func (r *Recipe) Apply(b *mdwizard.Builder) error {
	if r.Title != "" {
		b.H1(r.Title, mdwizard.Underline())
	}
	for i, blk := range r.Blocks {
		if err := blk.apply(b); err != nil {
			return fmt.Errorf("%w: blocks[%d] (%s): %v", ErrInvalid, i, blk.Type, err)
		}
	}
	return nil
}

func (blk *Block) apply(b *mdwizard.Builder) error {
	switch blk.Type {
	case TypeParagraph:
		b.P(blk.Text)
	case TypeH1:
		b.H1(blk.Text, blk.headingOptions()...)
	case TypeH2:
		b.H2(blk.Text, blk.headingOptions()...)
	case TypeH3:
		b.H3(blk.Text)
	case TypeBlockquote:
		b.Blockquote(blk.Text)
	case TypeRule:
		b.HR()
	case TypeCode:
		b.CodeBlock(blk.Text, blk.Lang)
	case TypeTable:
		aligns, err := blk.alignments()
		if err != nil {
			return err
		}
		b.Table(blk.Columns, blk.Rows, aligns...)
	case TypeBullets:
		b.BulletedList(blk.Items, blk.Levels...)
	case TypeOrdered:
		b.OrderedList(blk.Items, blk.Levels...)
	case TypeCollapsible:
		opts := []mdwizard.FragmentOption{mdwizard.Level(blk.Level)}
		if blk.Collapsed {
			opts = append(opts, mdwizard.Collapsed())
		}
		b.Collapsible(blk.Text, opts...)
	case TypeEndCollapsible:
		b.EndCollapsible()
	case TypeBadge:
		b.Badge(blk.Kind, blk.Params...)
	case TypeBreak:
		b.Br()
	case TypeWrite:
		b.WriteAt(blk.Level, blk.Text)
	case TypeWriteln:
		b.WritelnAt(blk.Level, blk.Text)
	case TypeLink:
		b.P(mdwizard.Link(blk.URL, blk.Text, blk.Title))
	case TypeImage:
		b.P(mdwizard.Image(blk.URL, blk.Text, blk.Title))
	default:
		return fmt.Errorf("unknown block type %q", blk.Type)
	}
	return nil
}

func (blk *Block) headingOptions() []mdwizard.FragmentOption {
	opts := []mdwizard.FragmentOption{mdwizard.Level(blk.Level)}
	if blk.Underline {
		opts = append(opts, mdwizard.Underline())
	}
	return opts
}

func (blk *Block) alignments() ([]mdwizard.Alignment, error) {
	aligns := make([]mdwizard.Alignment, 0, len(blk.Align))
	for _, s := range blk.Align {
		a, err := mdwizard.ParseAlignment(s)
		if err != nil {
			return nil, err
		}
		aligns = append(aligns, a)
	}
	return aligns, nil
}
