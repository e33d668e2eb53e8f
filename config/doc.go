// Package config holds the validated settings for one generate-and-print
// run and loads them from YAML.
//
// Defaults match the command line: a 5×5 board with 4 mines, no anti-mines,
// the Adjacent rule, :boom: / :rosette: markers, "||" spoilers and the size
// cap in force.
package config
