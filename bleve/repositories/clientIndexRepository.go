package repositories

import (
	"strings"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

const clientsIndex = "clients"

type bleveClientDoc struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Phone    string              `json:"phone"`
	VisaType string              `json:"visa_type"`
	Status   models.ClientStatus `json:"status"`
}

func newBleveClientDoc(client models.Client) bleveClientDoc {
	return bleveClientDoc{
		ID:       client.ID.String(),
		Name:     client.Name,
		Phone:    client.Phone,
		VisaType: client.VisaType,
		Status:   client.Status,
	}
}

func (r *BleveRepository) IndexSingleClient(client models.Client) error {
	err := r.indexer.IndexDocument(clientsIndex, client.ID.String(), newBleveClientDoc(client))
	if err != nil {
		config.Logger.Error("Failed to index single client into Bleve", zap.Error(err), zap.String("client_id", client.ID.String()))
		return err
	}

	return nil
}

func (r *BleveRepository) IndexExistingClients(clients []models.Client) error {
	docsToBleveIndex := make(map[string]interface{})

	for _, client := range clients {
		docsToBleveIndex[client.ID.String()] = newBleveClientDoc(client)
	}

	if len(docsToBleveIndex) == 0 {
		config.Logger.Info("No clients to index into Bleve.")
		return nil
	}

	if err := r.indexer.BulkIndexDocuments(clientsIndex, docsToBleveIndex); err != nil {
		config.Logger.Error("Failed to bulk index clients into Bleve", zap.Error(err))
		return err
	}

	config.Logger.Info("Successfully bulk indexed clients into Bleve", zap.Int("count", len(docsToBleveIndex)))
	return nil
}

// SearchClients layers exact, phrase, fuzzy, prefix and wildcard strategies
// over name and phone, optionally constrained by status.
func (r *BleveRepository) SearchClients(queryString, status string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))

	booleanQuery := bleve.NewBooleanQuery()

	// 1. Exact Matches (Highest Priority)
	exactMatch := bleve.NewBooleanQuery()
	for _, field := range []string{"name", "phone"} {
		termQuery := bleve.NewTermQuery(queryString)
		termQuery.SetField(field)
		termQuery.SetBoost(6.0)
		exactMatch.AddShould(termQuery)
	}

	// 2. Phrase Matches (High Priority)
	phraseMatch := bleve.NewBooleanQuery()
	phraseQuery := bleve.NewMatchPhraseQuery(queryString)
	phraseQuery.SetField("name")
	phraseQuery.SetBoost(5.0)
	phraseMatch.AddShould(phraseQuery)

	// 3. Fuzzy Matching (Medium Priority)
	fuzzyMatch := bleve.NewBooleanQuery()
	fuzzyQuery := bleve.NewFuzzyQuery(queryString)
	fuzzyQuery.SetField("name")
	fuzzyQuery.SetFuzziness(2)
	fuzzyQuery.SetBoost(3.0)
	fuzzyMatch.AddShould(fuzzyQuery)

	// 4. Prefix Matching (Low Priority)
	prefixMatch := bleve.NewBooleanQuery()
	for _, field := range []string{"name", "phone"} {
		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		prefixMatch.AddShould(prefixQuery)
	}

	// 5. Wildcard Matching (Lowest Priority)
	wildcardMatch := bleve.NewBooleanQuery()
	wildcardQuery := bleve.NewWildcardQuery("*" + queryString + "*")
	wildcardQuery.SetBoost(1.0)
	wildcardMatch.AddShould(wildcardQuery)

	booleanQuery.AddShould(exactMatch)
	booleanQuery.AddShould(phraseMatch)
	booleanQuery.AddShould(fuzzyMatch)
	booleanQuery.AddShould(prefixMatch)
	booleanQuery.AddShould(wildcardMatch)

	finalQuery := bleve.NewBooleanQuery()
	finalQuery.AddMust(booleanQuery)

	if status != "" {
		statusQuery := bleve.NewTermQuery(strings.ToLower(status))
		statusQuery.SetField("status")
		finalQuery.AddMust(statusQuery)
	}

	return r.indexer.SearchIndex(clientsIndex, finalQuery, 20)
}

// UpdateClient re-indexes a client after a change.
func (r *BleveRepository) UpdateClient(client models.Client) error {
	clientID := client.ID.String()

	if err := r.indexer.DeleteDocument(clientsIndex, clientID); err != nil {
		config.Logger.Error("Failed to delete client document for update in Bleve",
			zap.Error(err),
			zap.String("client_id", clientID))
		return err
	}

	if err := r.IndexSingleClient(client); err != nil {
		config.Logger.Error("Failed to re-index updated client into Bleve",
			zap.Error(err),
			zap.String("client_id", clientID))
		return err
	}

	return nil
}

func (r *BleveRepository) GetClientDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument(clientsIndex, id)
}
