// Package amhapy translates AmhaPy, a small teaching language that spells
// Python-like constructs with Amharic keywords, into runnable Python 3
// source text.
//
// Translation is two passes over text and tokens, with no syntax tree in
// between:
//
//   - Lex scans source line by line into a flat token sequence,
//     synthesizing Indent and Dedent markers from 4-column indentation
//     changes the way Python's own tokenizer does.
//   - Transpile walks that sequence once, maps each keyword spelling
//     through the fixed vocabulary, and re-assembles logical lines as
//     Python text, rewriting print statements into call form.
//
// Comments start with # and run to end of line. Blank and comment-only
// lines never affect block structure. The package does no I/O of its own;
// reading source files and executing the generated Python belong to callers
// (see the pyexec package and the amhapy command).
package amhapy
