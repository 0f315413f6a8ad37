// Package page loads the HTML sources the router renders.
//
// Page sources are resolved in order:
//  1. .pwademo/pages/<name>.html (project-local)
//  2. <config dir>/pages/<name>.html (user global)
//  3. Built-in pages (embedded in binary)
//
// Each source may start with YAML frontmatter:
//
//	---
//	name: header
//	description: Navigation links shown above every page
//	---
//	<div class="div_header">...</div>
//
// The content uses {ph_...} markers that the router substitutes with
// package htmlsrc.
package page
