package mdwizard

import (
	"errors"

	"github.com/alnah/go-mdwizard/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Badge dispatch errors. Badge itself never returns these; they are
	// attached to the diagnostic it logs and returned by ParseBadgeKind.
	ErrUnsupportedBadge = errors.New("unsupported badge type")

	// Table alignment parsing errors.
	ErrInvalidAlignment = errors.New("invalid alignment")

	// Preview rendering errors. The conversion errors are the ones the
	// renderers wrap, so messages carry the sentinel text once.
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrTerminalRender = pipeline.ErrTerminalRender
)
