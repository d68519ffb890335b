// Package sass provides a StylesheetCompiler backed by Dart Sass.
//
// Dart Sass runs as a long-lived subprocess speaking the embedded Sass
// protocol. The process is started on first use, every compilation is
// bounded by a timeout, and Close stops the process.
package sass
