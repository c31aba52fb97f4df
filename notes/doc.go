// SPDX-License-Identifier: MIT

// Package notes appends text to a file, creating the file when it does not
// exist yet.
//
// OpenOrCreate first tries a plain append-open without O_CREATE. Only a
// "does not exist" failure triggers creation; every other error (permission,
// is-a-directory, ...) is returned to the caller. The created flag lets the
// caller log the recovery.
package notes
