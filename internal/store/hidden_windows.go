//go:build windows

package store

import (
	"errors"

	"golang.org/x/sys/windows"
)

func hiddenName(name string) string {
	return name
}

// markHidden sets FILE_ATTRIBUTE_HIDDEN on path, keeping other attributes.
func markHidden(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}

	return windows.SetFileAttributes(p, attrs|windows.FILE_ATTRIBUTE_HIDDEN)
}

// prepareReplace resets the attributes of an existing record file so it can
// be replaced. Hidden files refuse to be overwritten.
func prepareReplace(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	err = windows.SetFileAttributes(p, windows.FILE_ATTRIBUTE_NORMAL)
	if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) || errors.Is(err, windows.ERROR_PATH_NOT_FOUND) {
		return nil
	}

	return err
}
