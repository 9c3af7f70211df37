package serializer

import (
	"github.com/erraggy/oaspath/internal/pathutil"
	"github.com/erraggy/oaspath/oaserrors"
)

// expectedPathValue is the only type accepted for path substitution.
const expectedPathValue = "string"

// SerializePath substitutes params into the path template and prepends the
// base path.
//
// Every supplied, non-nil value replaces each occurrence of its {name}
// placeholder after ECMAScript encodeURI escaping; names need not be
// declared in the document. Values that are not strings are still
// substituted using their text form, but every such value is reported in
// one *oaserrors.WrongDataTypeError. Only when all values are strings are
// leftover placeholders reported, as a *oaserrors.MissingPathParamError.
//
// The method is case-insensitive and the path need not exist in the
// document. params may be nil and is never modified.
func (s *Serializer) SerializePath(method, path string, params map[string]any) (string, error) {
	// populate the index for this operation
	_ = s.QueryParameters(path, method)

	found := newProblems(path)
	serialized := path
	for _, name := range sortedKeys(params) {
		value := params[name]
		if isAbsent(value) {
			continue
		}
		text, ok := value.(string)
		if !ok {
			found.add(oaserrors.DataTypeProblem{
				Expected: expectedPathValue,
				Name:     name,
				Value:    value,
			})
			text = stringify(value)
		}
		serialized = pathutil.ReplacePlaceholder(serialized, name, pathutil.EncodeURI(text))
	}

	if err := found.err(); err != nil {
		return "", err
	}

	if missing := pathutil.PlaceholderNames(serialized); len(missing) > 0 {
		return "", &oaserrors.MissingPathParamError{
			Path:          path,
			MissingParams: missing,
		}
	}

	return s.basePath + serialized, nil
}
