package introspection

import (
	"reflect"
)

// resolve walks path on target, one field per segment. A null target or a null
// value met before the last segment resolves to null (an invalid value) silently.
func (fs *FieldSupport) resolve(path string, target any) (reflect.Value, error) {
	root := reflect.ValueOf(target)
	if isNull(root) {
		return reflect.Value{}, nil
	}

	fp, err := ParsePath(path)
	if err != nil {
		return reflect.Value{}, invalidPath(path, fs.render(root), err)
	}

	v := root
	last := len(fp.segments) - 1

	for i, segment := range fp.segments {
		next, err := fs.readField(v, segment)
		if err != nil {
			return reflect.Value{}, err
		}

		if isNull(next) {
			if i < last {
				fs.logger.Debug("null value in field path",
					"path", path,
					"field", segment)
			}

			return reflect.Value{}, nil
		}

		v = next
	}

	return v, nil
}
