package controllers

import (
	"visa-office-backend/bleve/repositories"
	clientRepositories "visa-office-backend/clients/repositories"
)

type SearchController struct {
	repo       *repositories.BleveRepository
	clientRepo clientRepositories.ClientRepository
}

func NewSearchController(repo *repositories.BleveRepository, clientRepo clientRepositories.ClientRepository) *SearchController {
	return &SearchController{repo: repo, clientRepo: clientRepo}
}
