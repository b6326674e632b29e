// Package modelstore turns the model path stored on a plant into a URL the
// 3D viewer can fetch.
package modelstore

import (
	"context"
	"strings"
)

// Resolver maps a stored model path (for example "/models/neem.glb") to a
// fetchable URL.
type Resolver interface {
	ResolveURL(ctx context.Context, modelPath string) (string, error)
}

// StaticResolver serves models from a fixed base URL. Absolute http(s) paths
// are returned unchanged.
type StaticResolver struct {
	BaseURL string
}

// ResolveURL joins BaseURL and modelPath.
func (r StaticResolver) ResolveURL(_ context.Context, modelPath string) (string, error) {
	if isAbsoluteURL(modelPath) || r.BaseURL == "" {
		return modelPath, nil
	}
	return strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(modelPath, "/"), nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
