// Package splice extracts one logical section of a filing that an external
// paginator has split across several HTML files. It tracks the section
// boundaries across files, copies a sanitized, structurally valid subtree
// range out of each file, and assembles the pieces into one document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, yaml/).
package splice
