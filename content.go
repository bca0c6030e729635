package ftracker

import "embed"

// Content holds the default package list
//go:embed etc
var Content embed.FS
