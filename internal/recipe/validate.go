package recipe

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report YAML key names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the recipe structure and the fields each block type needs.
// Called automatically by Parse, but available for recipes built in code.
func (r *Recipe) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, describeValidation(err))
	}
	for i := range r.Blocks {
		if err := r.Blocks[i].check(); err != nil {
			return fmt.Errorf("%w: blocks[%d] (%s): %v", ErrInvalid, i, r.Blocks[i].Type, err)
		}
	}
	return nil
}

// check enforces the per-type requirements that struct tags cannot express.
func (blk *Block) check() error {
	switch blk.Type {
	case TypeH1, TypeH2, TypeH3, TypeCollapsible:
		if strings.TrimSpace(blk.Text) == "" {
			return errors.New("text is required")
		}
	case TypeCode:
		if blk.Text == "" {
			return errors.New("text is required")
		}
	case TypeTable:
		if len(blk.Columns) == 0 {
			return errors.New("columns is required")
		}
		if _, err := blk.alignments(); err != nil {
			return err
		}
	case TypeBullets, TypeOrdered:
		if len(blk.Items) == 0 {
			return errors.New("items is required")
		}
	case TypeBadge:
		if blk.Kind == "" {
			return errors.New("kind is required")
		}
	case TypeLink, TypeImage:
		if blk.URL == "" {
			return errors.New("url is required")
		}
	}
	return nil
}

// describeValidation flattens validator errors into "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Recipe.")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: failed %q (value %v)", field, rule, fe.Value()))
	}
	return strings.Join(parts, "; ")
}
