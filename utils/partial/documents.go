package partial

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"text2phenotype.com/absa/utils"
)

// Document is a typed view over a JSON object whose other fields are kept
// verbatim. Typed fields are merged back into the stored object on Encode.
type Document interface {
	raw() []byte
	setRaw([]byte)
}

type Base struct {
	rawJSON []byte
}

func (doc *Base) raw() []byte {
	return doc.rawJSON
}

func (doc *Base) setRaw(raw []byte) {
	doc.rawJSON = raw
}

// Decode fills the typed fields of doc and remembers the whole object.
func Decode(data []byte, doc Document) error {
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("decode partial document: %w", err)
	}
	doc.setRaw(append([]byte(nil), data...))
	return nil
}

// Encode merges the typed fields of doc over the object it was decoded from.
// Typed fields holding null remove the key.
func Encode(doc Document) ([]byte, error) {
	typed, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	raw := doc.raw()
	if len(raw) == 0 {
		return typed, nil
	}
	merged, err := jsonpatch.MergePatch(raw, typed)
	if err != nil {
		return nil, fmt.Errorf("merge partial document: %w", err)
	}
	return merged, nil
}

// CopyValues fills the typed fields of to from the current state of from.
// Only the typed fields of to are stored afterwards.
func CopyValues(from Document, to Document) error {
	data, err := Encode(from)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, to); err != nil {
		return fmt.Errorf("copy partial document: %w", err)
	}
	own, err := json.Marshal(to)
	if err != nil {
		return err
	}
	to.setRaw(own)
	return nil
}

// ApplyUpdates runs update against doc, converting a panic into an error.
func ApplyUpdates[T Document](doc T, update func(T)) (err error) {
	if update == nil {
		return nil
	}
	defer utils.RecoverWithError(&err)
	update(doc)
	return nil
}
