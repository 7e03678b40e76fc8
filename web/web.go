// Package web embeds the static assets served by the API: the Swagger UI
// shell and the OpenAPI document it renders.
package web

import "embed"

//go:embed docs.html swagger.json
var Files embed.FS
