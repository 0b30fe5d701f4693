// Package zarr probes a Zarr-format hazard array store kept in S3-compatible
// object storage. The computation engine owns reading and rendering the
// arrays; this package only answers the cheap existence question so the edge
// layer can reject requests for resources that are not there.
package zarr

import (
	"context"
	"path"

	"github.com/minio/minio-go/v7"
)

// Zarr array metadata keys. A group or array directory carries at least one
// of these at its root.
var metadataKeys = []string{".zarray", ".zattrs", ".zgroup"}

// Store is a read-only view over one Zarr root inside a bucket.
type Store struct {
	client *minio.Client
	bucket string
	root   string
}

// New creates a Store over bucket/root (root e.g. "hazard/hazard.zarr").
func New(client *minio.Client, bucket, root string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		root:   root,
	}
}

// Exists reports whether a resource path inside the store refers to a Zarr
// array or group, by statting its metadata keys.
func (s *Store) Exists(ctx context.Context, resource string) (bool, error) {
	for _, key := range metadataKeys {
		objectName := path.Join(s.root, resource, key)
		_, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
		if err == nil {
			return true, nil
		}
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			continue
		} else {
			return false, NewConnectionError("stat_object", err)
		}
	}
	return false, nil
}
