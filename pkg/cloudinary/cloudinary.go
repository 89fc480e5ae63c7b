package cloudinary

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client wraps Cloudinary upload, listing and bulk deletion. Folders stand in
// for storage buckets.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
	ListFolder(ctx context.Context, folder string) (publicIDs []string, err error)
	RemoveAssets(ctx context.Context, publicIDs []string) error
}

// deleteBatchSize is the Cloudinary API limit for one DeleteAssets call.
const deleteBatchSize = 100

const listPageSize = 500

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
	admin     *admin.API
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	adm, err := admin.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{
		cloudName: cloudName,
		uploader:  up,
		admin:     adm,
	}, nil
}

var overwriteTrue = true

// UploadImage uploads an image into folder under publicID and returns its
// public URL.
func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:    folder,
		PublicID:  publicID,
		Overwrite: &overwriteTrue,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// ListFolder returns the public IDs of every asset under the folder prefix.
func (c *clientImpl) ListFolder(ctx context.Context, folder string) ([]string, error) {
	var ids []string
	cursor := ""
	for {
		res, err := c.admin.Assets(ctx, admin.AssetsParams{
			AssetType:  api.Image,
			Prefix:     folder + "/",
			MaxResults: listPageSize,
			NextCursor: cursor,
		})
		if err != nil {
			return nil, err
		}
		for _, a := range res.Assets {
			ids = append(ids, a.PublicID)
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return ids, nil
}

// RemoveAssets deletes the given assets, batching to the API limit.
func (c *clientImpl) RemoveAssets(ctx context.Context, publicIDs []string) error {
	for start := 0; start < len(publicIDs); start += deleteBatchSize {
		end := start + deleteBatchSize
		if end > len(publicIDs) {
			end = len(publicIDs)
		}
		_, err := c.admin.DeleteAssets(ctx, admin.DeleteAssetsParams{
			PublicIDs: api.CldAPIArray(publicIDs[start:end]),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
