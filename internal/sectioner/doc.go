// Package sectioner splits a page-tagged document into titled sections
// using heading heuristics, with a fixed-size page-window fallback when
// no headings are found anywhere.
//
// Pages are tagged with inline markers, concatenated, and divided into
// blank-line-delimited blocks. A block whose first line looks like a
// heading closes the current section and opens a new one; other blocks
// accumulate into the current section. Heading detection is an ordered
// table of independent pattern matchers, first match wins, so each
// pattern can be tested in isolation.
package sectioner
