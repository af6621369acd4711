// Package scripture locates verses in a plain-text corpus and formats them for display.
//
// A corpus is a single text blob. Books start with a "THE BOOK OF <NAME>" line, chapters with
// "CHAPTER <n>" (or "PSALM <n>" inside the book of Psalms), and every verse line starts with its
// number followed by a space. Nothing is indexed; each lookup scans the text for the headings it
// needs. All functions in this package are pure and operate on in-memory strings.
package scripture
