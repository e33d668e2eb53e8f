// Package render turns a generated board into output: spoiler-wrapped chat
// text, the rules legend printed above it, and an unspoilered terminal
// preview drawn with tcell.
package render
