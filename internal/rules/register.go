package rules

import (
	"github.com/donaldgifford/fortfmt/internal/rules/format"
)

func init() {
	// Registration order is execution order. Layout conversion runs first so
	// every later rule sees free-form regions; trailing whitespace runs last
	// so no rule can reintroduce what it strips.
	RegisterFormatRule(&format.LayoutConvert{})
	RegisterFormatRule(&format.Reindent{})
	RegisterFormatRule(&format.Doxygen{})
	RegisterFormatRule(&format.CommentSpacing{})
	RegisterFormatRule(&format.Declarations{})
	RegisterFormatRule(&format.KeywordSpacing{})
	RegisterFormatRule(&format.ContinuationAlign{})
	RegisterFormatRule(&format.PreprocIndent{})
	RegisterFormatRule(&format.TrailingWhitespace{})
}
