package scene

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Digest returns a short content hash of the document. Two documents with
// the same entities and queries share a digest regardless of formatting or
// comments in their source files, so journaled runs can tell whether the
// scene changed between them.
func Digest(doc *Document) string {
	data, err := yaml.Marshal(doc)
	if err != nil {
		// Every field of a parsed document is marshalable.
		panic(fmt.Sprintf("scene: cannot marshal %s: %v", doc.ID, err))
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
