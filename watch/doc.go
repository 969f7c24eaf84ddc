// SPDX-License-Identifier: MIT

// Package watch streams the contents of a file each time it changes. The
// service uses it to re-evaluate tanks whenever the operator saves a new
// readings file.
package watch
