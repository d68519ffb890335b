// Package esbuild provides an in-process StylesheetCompiler backed by
// esbuild's CSS parser. It understands plain CSS only and checks .css
// files when Dart Sass is not installed.
package esbuild
