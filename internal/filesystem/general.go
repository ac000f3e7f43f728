package filesystem

import (
	"errors"
	"os"
)

// CheckFSObject reports whether fsPath exists. Errors other than "not exist" are returned.
func CheckFSObject(fsPath string) (bool, error) {
	_, err := os.Stat(fsPath)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
