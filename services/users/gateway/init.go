package gateway

import (
	httpclient "github.com/piresc/tumpang/internal/pkg/http"
	"github.com/piresc/tumpang/internal/pkg/storage"
)

// UserGW implements the users.UserGW interface
type UserGW struct {
	httpClient *httpclient.Client
	uploader   storage.Uploader
}

// NewUserGW creates the user gateway from an outbound HTTP client and an avatar store
func NewUserGW(httpClient *httpclient.Client, uploader storage.Uploader) *UserGW {
	return &UserGW{
		httpClient: httpClient,
		uploader:   uploader,
	}
}
