// Package libsass provides an in-process StylesheetCompiler backed by
// LibSass. It is the SCSS compiler used when Dart Sass is not installed.
package libsass
