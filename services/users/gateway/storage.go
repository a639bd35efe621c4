package gateway

import (
	"context"
	"fmt"
	"io"
)

// UploadAvatar stores an avatar image and returns its public URL
func (g *UserGW) UploadAvatar(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	url, err := g.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return url, nil
}
