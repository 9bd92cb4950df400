// Package ltxtoc post-processes LaTeX-generated HTML. It assigns stable,
// unique ids to section headings that lack them and inserts a nested table
// of contents linking to those headings at the top of the document body.
//
// This package contains the core transformation, domain types and interfaces
// following Ben Johnson's Standard Package Layout. Implementations that need
// I/O or third-party libraries live in subdirectories named after their
// primary dependency (e.g., fs/, goquery/, htmltomarkdown/).
package ltxtoc
