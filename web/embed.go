// ABOUTME: Embedded filesystem for the inspector's HTML templates.
// ABOUTME: Exports ContentFS so the server needs no runtime filesystem paths.
package web

import "embed"

//go:embed templates/*
var ContentFS embed.FS
