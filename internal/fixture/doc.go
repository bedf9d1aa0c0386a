// Package fixture creates temporary files for tests of code transformation tools.
//
// A Helper writes content to uniquely named files, optionally under a chosen base
// name inside a fresh directory, and can wrap a code body into a transform module of
// the form
//
//	module.exports = function(fileInfo, api, options) { <body> }
//
// Created entries are left on disk unless cleanup tracking is enabled.
package fixture
