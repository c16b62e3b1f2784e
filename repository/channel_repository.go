package repository

import (
	"encoding/json"
	"errors"
	"os"

	"go-iptv-portal/common"
	"go-iptv-portal/logger"
	"go-iptv-portal/model"
)

// IChannelRepository defines the contract for reading the channel catalog.
type IChannelRepository interface {
	GetChannels() ([]*model.Channel, error)
}

// FileChannelRepository reads the catalog from a JSON file on disk. The file
// is owned by an external process; it is re-read on every call so edits show
// up without a restart.
type FileChannelRepository struct {
	Path string
}

// NewFileChannelRepository creates a repository backed by the file at path.
func NewFileChannelRepository(path string) *FileChannelRepository {
	return &FileChannelRepository{Path: path}
}

// GetChannels loads and decodes the full catalog.
func (r *FileChannelRepository) GetChannels() ([]*model.Channel, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrCatalogNotFound
		}
		logger.Log.WithError(err).WithField("path", r.Path).Error("Failed to read channel catalog")
		return nil, err
	}

	var channels []*model.Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		logger.Log.WithError(err).WithField("path", r.Path).Error("Failed to parse channel catalog")
		return nil, common.ErrCatalogMalformed
	}
	return channels, nil
}
