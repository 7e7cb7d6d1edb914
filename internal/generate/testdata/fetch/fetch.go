//go:build smarterr

package fetch

import (
	"io/fs"
)

type NotFound struct {
	Name string
}

func (e *NotFound) Error() string {
	return e.Name + " not found"
}

//errorset
func Fetch(name string) (string, interface{ *NotFound | *fs.PathError | *NotFound }) {
	return "", nil
}

//errorset pub
func load(name string) (string, interface{ *fs.PathError }) {
	return "", nil
}

//errorset
func Plain() (string, error) {
	return "", nil
}
