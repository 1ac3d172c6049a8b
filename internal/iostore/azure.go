package iostore

import (
	"context"
	"errors"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/gnames/cbstats/pkg/store"
)

type azureStore struct {
	client    *azblob.Client
	container string
}

// NewAzure creates a store backed by an Azure Blob Storage container. The
// container is created when missing.
func NewAzure(
	ctx context.Context,
	connStr, container string,
) (store.Store, error) {
	if connStr == "" || container == "" {
		return nil, OpenError("azure", container,
			errors.New("connection string and container are required"))
	}

	client, err := azblob.NewClientFromConnectionString(connStr, nil)
	if err != nil {
		return nil, OpenError("azure", container, err)
	}

	_, err = client.CreateContainer(ctx, container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, OpenError("azure", container, err)
	}

	return &azureStore{client: client, container: container}, nil
}

func (s *azureStore) Put(ctx context.Context, key string, data []byte) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	_, err = s.client.UploadBuffer(ctx, s.container, k, data, nil)
	if err != nil {
		return WriteError(key, err)
	}
	return nil
}

func (s *azureStore) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.DownloadStream(ctx, s.container, k, nil)
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return nil, NotFoundError(key)
	}
	if err != nil {
		return nil, ReadError(key, err)
	}
	defer resp.Body.Close()

	res, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ReadError(key, err)
	}
	return res, nil
}

func (s *azureStore) Close() error {
	return nil
}
