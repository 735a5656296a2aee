package repositories

import (
	"context"
	bleveindex "visa-office-backend/bleve/services"
	"visa-office-backend/db/models"

	"github.com/blevesearch/bleve/v2"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	// General
	DeleteAllIndices(ctx context.Context) error

	// ==== Client Indexing ====
	IndexSingleClient(client models.Client) error
	IndexExistingClients(clients []models.Client) error
	UpdateClient(client models.Client) error
	SearchClients(queryString, status string) (*bleve.SearchResult, error)
	GetClientDocument(id string) (interface{}, error)
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

func (r *BleveRepository) DeleteAllIndices(ctx context.Context) error {
	return r.indexer.DeleteAllIndices()
}
