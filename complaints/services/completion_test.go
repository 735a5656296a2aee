package services

import (
	"testing"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupComplaintDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.DisappointedClient{},
		&models.ClientFollowup{},
		&models.LegalCase{},
		&models.ArchivedCase{},
		&models.CompletedClient{},
	))
	return db
}

func seedFileRecord(t *testing.T, db *gorm.DB) *models.DisappointedClient {
	t.Helper()

	record := &models.DisappointedClient{
		ClientName:      "Mona Farid",
		Phone:           "+201001234567",
		ContractDate:    utils.NewDateOnly(utils.Today()),
		PaidAmount:      decimal.NewFromInt(1500),
		ClientComplaint: "Visa was rejected after payment",
		Status:          models.ComplaintOngoing,
		CreatedBy:       "reception",
	}
	require.NoError(t, db.Create(record).Error)
	return record
}

func TestCompleteFileManagement(t *testing.T) {
	db := setupComplaintDB(t)
	record := seedFileRecord(t, db)

	var archived *models.ArchivedCase
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		archived, txErr = CompleteFileManagement(tx, record.ID, "manager")
		return txErr
	})
	require.NoError(t, err)

	assert.Equal(t, models.FileManagementStage, archived.Stage)
	assert.Equal(t, "Mona Farid", archived.ClientName)
	assert.Equal(t, "+201001234567", archived.ClientPhone)
	assert.Equal(t, "manager", archived.CreatedBy)

	require.NotNil(t, archived.FileManagement.ClientName)
	assert.Equal(t, "Mona Farid", *archived.FileManagement.ClientName)
	assert.Nil(t, archived.Followup.CallDetails)
	assert.Nil(t, archived.Legal.CallDetails)

	var archiveCount, sourceCount int64
	db.Model(&models.ArchivedCase{}).Count(&archiveCount)
	db.Model(&models.DisappointedClient{}).Count(&sourceCount)
	assert.Equal(t, int64(1), archiveCount)
	assert.Equal(t, int64(0), sourceCount)
}

func TestCompleteFileManagement_MissingRecord(t *testing.T) {
	db := setupComplaintDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, txErr := CompleteFileManagement(tx, uuid.New(), "manager")
		return txErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompleteClientFollowup_WithPredecessor(t *testing.T) {
	db := setupComplaintDB(t)
	fileRecord := seedFileRecord(t, db)

	followup := &models.ClientFollowup{
		DisappointedClientID: &fileRecord.ID,
		FormReceivedDate:     utils.NewDateOnly(utils.Today()),
		ClientCallDate:       utils.NewDateOnly(utils.Today()),
		CallDetails:          "Called and agreed on a refund schedule",
		ClientComplaint:      "Still unhappy with the delay",
		NewAgreement:         "Refund in two installments",
		Status:               models.ComplaintOngoing,
		CreatedBy:            "reception",
	}
	require.NoError(t, db.Create(followup).Error)

	var archived *models.ArchivedCase
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		archived, txErr = CompleteClientFollowup(tx, followup.ID, "manager")
		return txErr
	})
	require.NoError(t, err)

	// Identity comes from the file-management predecessor.
	assert.Equal(t, models.ClientFollowupStage, archived.Stage)
	assert.Equal(t, "Mona Farid", archived.ClientName)
	require.NotNil(t, archived.FileManagement.ClientName)
	require.NotNil(t, archived.Followup.CallDetails)
	assert.Equal(t, "Called and agreed on a refund schedule", *archived.Followup.CallDetails)

	var fileCount, followupCount int64
	db.Model(&models.DisappointedClient{}).Count(&fileCount)
	db.Model(&models.ClientFollowup{}).Count(&followupCount)
	assert.Equal(t, int64(0), fileCount)
	assert.Equal(t, int64(0), followupCount)
}

func TestCompleteClientFollowup_NoPredecessor(t *testing.T) {
	db := setupComplaintDB(t)

	followup := &models.ClientFollowup{
		FormReceivedDate: utils.NewDateOnly(utils.Today()),
		ClientCallDate:   utils.NewDateOnly(utils.Today()),
		CallDetails:      "Direct followup without an earlier record",
		ClientComplaint:  "Complaint received by phone",
		NewAgreement:     "None yet",
		Status:           models.ComplaintOngoing,
		CreatedBy:        "reception",
	}
	require.NoError(t, db.Create(followup).Error)

	var archived *models.ArchivedCase
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		archived, txErr = CompleteClientFollowup(tx, followup.ID, "manager")
		return txErr
	})
	require.NoError(t, err)

	assert.Equal(t, "Followup client", archived.ClientName)
	assert.Equal(t, "Unknown", archived.ClientPhone)
	assert.Nil(t, archived.FileManagement.ClientName)
	require.NotNil(t, archived.Followup.CallDetails)
}

func TestCompleteLegalCase_FullChain(t *testing.T) {
	db := setupComplaintDB(t)
	fileRecord := seedFileRecord(t, db)

	followup := &models.ClientFollowup{
		DisappointedClientID: &fileRecord.ID,
		FormReceivedDate:     utils.NewDateOnly(utils.Today()),
		ClientCallDate:       utils.NewDateOnly(utils.Today()),
		CallDetails:          "Escalated after failed negotiation",
		ClientComplaint:      "Wants full refund",
		NewAgreement:         "None",
		Status:               models.ComplaintOngoing,
		CreatedBy:            "reception",
	}
	require.NoError(t, db.Create(followup).Error)

	legalCase := &models.LegalCase{
		FollowupID:       &followup.ID,
		FormReceivedDate: utils.NewDateOnly(utils.Today()),
		CallDate:         utils.NewDateOnly(utils.Today()),
		CallDetails:      "Settlement reached before court",
		LastAgreement:    "Partial refund accepted",
		CaseType:         models.GeneralCaseType,
		Status:           models.LegalResolved,
		CreatedBy:        "legal",
	}
	require.NoError(t, db.Create(legalCase).Error)

	var archived *models.ArchivedCase
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		archived, txErr = CompleteLegalCase(tx, legalCase.ID, "manager")
		return txErr
	})
	require.NoError(t, err)

	assert.Equal(t, models.LegalCaseStage, archived.Stage)
	assert.Equal(t, "Mona Farid", archived.ClientName)
	require.NotNil(t, archived.FileManagement.ClientName)
	require.NotNil(t, archived.Followup.CallDetails)
	require.NotNil(t, archived.Legal.LastAgreement)
	assert.Equal(t, "Partial refund accepted", *archived.Legal.LastAgreement)

	// The whole chain is consumed.
	var fileCount, followupCount, legalCount int64
	db.Model(&models.DisappointedClient{}).Count(&fileCount)
	db.Model(&models.ClientFollowup{}).Count(&followupCount)
	db.Model(&models.LegalCase{}).Count(&legalCount)
	assert.Equal(t, int64(0), fileCount)
	assert.Equal(t, int64(0), followupCount)
	assert.Equal(t, int64(0), legalCount)

	// Roster row keyed by the original file-management record.
	var completed models.CompletedClient
	require.NoError(t, db.First(&completed).Error)
	require.NotNil(t, completed.OriginalClientID)
	assert.Equal(t, fileRecord.ID, *completed.OriginalClientID)
	assert.Equal(t, models.LegalCaseStage, completed.CompletionType)
}

func TestCompleteLegalCase_UpsertKeepsOneRosterRow(t *testing.T) {
	db := setupComplaintDB(t)
	fileRecord := seedFileRecord(t, db)

	existing := &models.CompletedClient{
		OriginalClientID:  &fileRecord.ID,
		ClientName:        "Mona Farid",
		ClientPhone:       "+201001234567",
		CompletionType:    models.ClientFollowupStage,
		CompletionDate:    utils.NewDateOnly(utils.Today()),
		CompletionDetails: "Earlier completion",
		CreatedBy:         "manager",
	}
	require.NoError(t, db.Create(existing).Error)

	followup := &models.ClientFollowup{
		DisappointedClientID: &fileRecord.ID,
		FormReceivedDate:     utils.NewDateOnly(utils.Today()),
		ClientCallDate:       utils.NewDateOnly(utils.Today()),
		CallDetails:          "Reopened and escalated",
		ClientComplaint:      "New complaint",
		NewAgreement:         "None",
		Status:               models.ComplaintOngoing,
		CreatedBy:            "reception",
	}
	require.NoError(t, db.Create(followup).Error)

	legalCase := &models.LegalCase{
		FollowupID:       &followup.ID,
		FormReceivedDate: utils.NewDateOnly(utils.Today()),
		CallDate:         utils.NewDateOnly(utils.Today()),
		CallDetails:      "Court resolved",
		LastAgreement:    "Final settlement",
		Status:           models.LegalResolved,
		CreatedBy:        "legal",
	}
	require.NoError(t, db.Create(legalCase).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, txErr := CompleteLegalCase(tx, legalCase.ID, "manager")
		return txErr
	})
	require.NoError(t, err)

	var rosterCount int64
	db.Model(&models.CompletedClient{}).Count(&rosterCount)
	assert.Equal(t, int64(1), rosterCount)

	var completed models.CompletedClient
	require.NoError(t, db.First(&completed).Error)
	assert.Equal(t, models.LegalCaseStage, completed.CompletionType)
}

func TestCompleteLegalCase_OrphanCase(t *testing.T) {
	db := setupComplaintDB(t)

	legalCase := &models.LegalCase{
		FormReceivedDate: utils.NewDateOnly(utils.Today()),
		CallDate:         utils.NewDateOnly(utils.Today()),
		CallDetails:      "Walk-in legal case",
		LastAgreement:    "None",
		Status:           models.LegalUnderReview,
		CreatedBy:        "legal",
	}
	require.NoError(t, db.Create(legalCase).Error)

	var archived *models.ArchivedCase
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		archived, txErr = CompleteLegalCase(tx, legalCase.ID, "manager")
		return txErr
	})
	require.NoError(t, err)

	assert.Equal(t, "Legal case client", archived.ClientName)
	assert.Equal(t, "Unknown", archived.ClientPhone)
	assert.Nil(t, archived.FileManagement.ClientName)
	assert.Nil(t, archived.Followup.CallDetails)

	// Without an original client the roster still gets its own row.
	var completed models.CompletedClient
	require.NoError(t, db.First(&completed).Error)
	assert.Nil(t, completed.OriginalClientID)
}

func TestArchiveLegalIntake_FoldsChain(t *testing.T) {
	db := setupComplaintDB(t)
	fileRecord := seedFileRecord(t, db)

	followup := &models.ClientFollowup{
		DisappointedClientID: &fileRecord.ID,
		FormReceivedDate:     utils.NewDateOnly(utils.Today()),
		ClientCallDate:       utils.NewDateOnly(utils.Today()),
		CallDetails:          "Escalation call",
		ClientComplaint:      "Unresolved refund",
		NewAgreement:         "None",
		Status:               models.ComplaintOngoing,
		CreatedBy:            "reception",
	}
	require.NoError(t, db.Create(followup).Error)

	intake := LegalIntake{
		FollowupID:       &followup.ID,
		FormReceivedDate: utils.NewDateOnly(utils.Today()),
		CallDate:         utils.NewDateOnly(utils.Today()),
		CallDetails:      "Legal consultation held",
		LastAgreement:    "Refund within 30 days",
	}

	var archived *models.ArchivedCase
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		archived, txErr = ArchiveLegalIntake(tx, intake, "legal")
		return txErr
	})
	require.NoError(t, err)

	assert.Equal(t, models.LegalCaseStage, archived.Stage)
	assert.Equal(t, "Mona Farid", archived.ClientName)
	require.NotNil(t, archived.Legal.LastAgreement)
	assert.Equal(t, "Refund within 30 days", *archived.Legal.LastAgreement)
	require.NotNil(t, archived.Followup.CallDetails)
	require.NotNil(t, archived.FileManagement.ClientName)

	// The submission never becomes a live legal case, and the chain is gone.
	var fileCount, followupCount, legalCount int64
	db.Model(&models.DisappointedClient{}).Count(&fileCount)
	db.Model(&models.ClientFollowup{}).Count(&followupCount)
	db.Model(&models.LegalCase{}).Count(&legalCount)
	assert.Equal(t, int64(0), fileCount)
	assert.Equal(t, int64(0), followupCount)
	assert.Equal(t, int64(0), legalCount)
}

func TestCompleteFileManagement_RollbackLeavesSource(t *testing.T) {
	db := setupComplaintDB(t)
	record := seedFileRecord(t, db)

	tx := db.Begin()
	require.NoError(t, tx.Error)

	_, err := CompleteFileManagement(tx, record.ID, "manager")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback().Error)

	var archiveCount, sourceCount int64
	db.Model(&models.ArchivedCase{}).Count(&archiveCount)
	db.Model(&models.DisappointedClient{}).Count(&sourceCount)
	assert.Equal(t, int64(0), archiveCount)
	assert.Equal(t, int64(1), sourceCount)
}
