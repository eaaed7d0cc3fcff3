package vault

import (
	"path"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// DetectKind classifies content by file name. Prose languages (Markdown,
// plain text, reStructuredText, ...) open in the editable view.
func DetectKind(name string) entity.ContentKind {
	// enry matches extensions case-sensitively.
	name = strings.ToLower(name)
	if path.Ext(name) == ".pdf" {
		return entity.KindPaged
	}
	if enry.IsImage(name) {
		return entity.KindImage
	}
	// Extensions are ambiguous (".md" is also GCC machine description), so
	// any prose candidate wins.
	for _, lang := range enry.GetLanguagesByExtension(name, nil, nil) {
		if enry.GetLanguageType(lang) == enry.Prose {
			return entity.KindMarkdown
		}
	}
	return entity.KindUnsupported
}
