// SPDX-License-Identifier: MIT

package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const filePerm = 0o644

// OpenOrCreate opens path for appending. If the file is missing it is
// created and created is true. The caller owns the returned file.
func OpenOrCreate(path string) (f *os.File, created bool, err error) {
	f, err = os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err == nil {
		return f, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("notes: open %s: %w", path, err)
	}

	f, err = os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return nil, false, fmt.Errorf("notes: create %s: %w", path, err)
	}

	return f, true, nil
}

// Append writes text to the end of path, creating the file if needed.
func Append(path, text string) (created bool, err error) {
	f, created, err := OpenOrCreate(path)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("notes: close %s: %w", path, cerr)
		}
	}()

	if _, err = f.WriteString(text); err != nil {
		return created, fmt.Errorf("notes: write %s: %w", path, err)
	}

	return created, nil
}
