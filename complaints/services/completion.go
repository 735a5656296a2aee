package services

import (
	"errors"
	"fmt"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fallback identity used when an archived case has no file-management
// predecessor left to take the client's name and phone from.
const (
	fallbackFollowupClientName = "Followup client"
	fallbackLegalClientName    = "Legal case client"
	fallbackClientPhone        = "Unknown"
)

func strPtr(s string) *string { return &s }

func fileSnapshotFrom(d *models.DisappointedClient) models.FileManagementSnapshot {
	paidAmount := d.PaidAmount
	contractDate := d.ContractDate
	return models.FileManagementSnapshot{
		ClientName:      strPtr(d.ClientName),
		Phone:           strPtr(d.Phone),
		ContractDate:    &contractDate,
		PaidAmount:      &paidAmount,
		FingerprintDate: d.FingerprintDate,
		RejectionDate:   d.RejectionDate,
		ClientComplaint: strPtr(d.ClientComplaint),
		Status:          strPtr(string(d.Status)),
		CreatedBy:       strPtr(d.CreatedBy),
	}
}

func followupSnapshotFrom(f *models.ClientFollowup) models.FollowupSnapshot {
	formReceived := f.FormReceivedDate
	clientCall := f.ClientCallDate
	return models.FollowupSnapshot{
		FormReceivedDate: &formReceived,
		ClientCallDate:   &clientCall,
		CallDetails:      strPtr(f.CallDetails),
		ClientComplaint:  strPtr(f.ClientComplaint),
		NewAgreement:     strPtr(f.NewAgreement),
		Status:           strPtr(string(f.Status)),
		CreatedBy:        strPtr(f.CreatedBy),
	}
}

func legalSnapshotFrom(l *models.LegalCase) models.LegalSnapshot {
	formReceived := l.FormReceivedDate
	callDate := l.CallDate
	return models.LegalSnapshot{
		FormReceivedDate: &formReceived,
		CallDate:         &callDate,
		CallDetails:      strPtr(l.CallDetails),
		LastAgreement:    strPtr(l.LastAgreement),
		CaseType:         strPtr(l.CaseType),
		Status:           strPtr(string(l.Status)),
		CreatedBy:        strPtr(l.CreatedBy),
	}
}

// CompleteFileManagement archives a file-management record and deletes it,
// all inside the caller's transaction.
func CompleteFileManagement(tx *gorm.DB, recordID uuid.UUID, completedBy string) (*models.ArchivedCase, error) {
	var record models.DisappointedClient
	if err := tx.First(&record, "id = ?", recordID).Error; err != nil {
		return nil, fmt.Errorf("failed to load disappointed client %s: %w", recordID, err)
	}

	archived := &models.ArchivedCase{
		ClientName:        record.ClientName,
		ClientPhone:       record.Phone,
		Stage:             models.FileManagementStage,
		FileManagement:    fileSnapshotFrom(&record),
		CompletionDate:    utils.NewDateOnly(utils.Today()),
		CompletionDetails: fmt.Sprintf("File management completed for %s", record.ClientName),
		CreatedBy:         completedBy,
	}

	if err := tx.Create(archived).Error; err != nil {
		return nil, fmt.Errorf("failed to create archived case: %w", err)
	}
	if err := tx.Delete(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to delete disappointed client %s: %w", recordID, err)
	}

	return archived, nil
}

// CompleteClientFollowup archives a followup together with its
// file-management predecessor when one still exists, then deletes both. A
// missing predecessor leaves its column group null instead of failing.
func CompleteClientFollowup(tx *gorm.DB, followupID uuid.UUID, completedBy string) (*models.ArchivedCase, error) {
	var followup models.ClientFollowup
	if err := tx.First(&followup, "id = ?", followupID).Error; err != nil {
		return nil, fmt.Errorf("failed to load client followup %s: %w", followupID, err)
	}

	archived := &models.ArchivedCase{
		ClientName:     fallbackFollowupClientName,
		ClientPhone:    fallbackClientPhone,
		Stage:          models.ClientFollowupStage,
		Followup:       followupSnapshotFrom(&followup),
		CompletionDate: utils.NewDateOnly(utils.Today()),
		CreatedBy:      completedBy,
	}

	var predecessor *models.DisappointedClient
	if followup.DisappointedClientID != nil {
		var record models.DisappointedClient
		err := tx.First(&record, "id = ?", *followup.DisappointedClientID).Error
		if err == nil {
			predecessor = &record
			archived.ClientName = record.ClientName
			archived.ClientPhone = record.Phone
			archived.FileManagement = fileSnapshotFrom(&record)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load file management predecessor: %w", err)
		}
	}
	archived.CompletionDetails = fmt.Sprintf("File management and followup completed for %s", archived.ClientName)

	if err := tx.Create(archived).Error; err != nil {
		return nil, fmt.Errorf("failed to create archived case: %w", err)
	}
	if predecessor != nil {
		if err := tx.Delete(predecessor).Error; err != nil {
			return nil, fmt.Errorf("failed to delete file management predecessor: %w", err)
		}
	}
	if err := tx.Delete(&followup).Error; err != nil {
		return nil, fmt.Errorf("failed to delete client followup %s: %w", followupID, err)
	}

	return archived, nil
}

// CompleteLegalCase archives a legal case with whatever remains of its
// followup and file-management chain, deletes the whole chain, and upserts
// the flat completed-clients roster keyed by the original client ID.
func CompleteLegalCase(tx *gorm.DB, caseID uuid.UUID, completedBy string) (*models.ArchivedCase, error) {
	var legalCase models.LegalCase
	if err := tx.First(&legalCase, "id = ?", caseID).Error; err != nil {
		return nil, fmt.Errorf("failed to load legal case %s: %w", caseID, err)
	}

	archived := &models.ArchivedCase{
		ClientName:     fallbackLegalClientName,
		ClientPhone:    fallbackClientPhone,
		Stage:          models.LegalCaseStage,
		Legal:          legalSnapshotFrom(&legalCase),
		CompletionDate: utils.NewDateOnly(utils.Today()),
		CreatedBy:      completedBy,
	}

	var followup *models.ClientFollowup
	var fileRecord *models.DisappointedClient

	if legalCase.FollowupID != nil {
		var record models.ClientFollowup
		err := tx.First(&record, "id = ?", *legalCase.FollowupID).Error
		if err == nil {
			followup = &record
			archived.Followup = followupSnapshotFrom(&record)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load followup predecessor: %w", err)
		}
	}

	if followup != nil && followup.DisappointedClientID != nil {
		var record models.DisappointedClient
		err := tx.First(&record, "id = ?", *followup.DisappointedClientID).Error
		if err == nil {
			fileRecord = &record
			archived.ClientName = record.ClientName
			archived.ClientPhone = record.Phone
			archived.FileManagement = fileSnapshotFrom(&record)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load file management predecessor: %w", err)
		}
	}
	archived.CompletionDetails = fmt.Sprintf("Legal case completed for %s", archived.ClientName)

	if err := tx.Create(archived).Error; err != nil {
		return nil, fmt.Errorf("failed to create archived case: %w", err)
	}

	var originalClientID *uuid.UUID
	if fileRecord != nil {
		id := fileRecord.ID
		originalClientID = &id
		if err := tx.Delete(fileRecord).Error; err != nil {
			return nil, fmt.Errorf("failed to delete file management predecessor: %w", err)
		}
	}
	if followup != nil {
		if err := tx.Delete(followup).Error; err != nil {
			return nil, fmt.Errorf("failed to delete followup predecessor: %w", err)
		}
	}
	if err := tx.Delete(&legalCase).Error; err != nil {
		return nil, fmt.Errorf("failed to delete legal case %s: %w", caseID, err)
	}

	if err := upsertCompletedClient(tx, originalClientID, archived, completedBy); err != nil {
		return nil, err
	}

	return archived, nil
}

// LegalIntake is a legal-case submission that completes the whole chain in
// one step instead of leaving a live legal-case record behind.
type LegalIntake struct {
	FollowupID       *uuid.UUID
	FormReceivedDate utils.DateOnly
	CallDate         utils.DateOnly
	CallDetails      string
	LastAgreement    string
}

// ArchiveLegalIntake folds a legal submission together with whatever remains
// of its followup and file-management chain straight into the archive, and
// deletes the chain. No legal-case row is ever created.
func ArchiveLegalIntake(tx *gorm.DB, intake LegalIntake, completedBy string) (*models.ArchivedCase, error) {
	formReceived := intake.FormReceivedDate
	callDate := intake.CallDate
	archived := &models.ArchivedCase{
		ClientName:  fallbackLegalClientName,
		ClientPhone: fallbackClientPhone,
		Stage:       models.LegalCaseStage,
		Legal: models.LegalSnapshot{
			FormReceivedDate: &formReceived,
			CallDate:         &callDate,
			CallDetails:      strPtr(intake.CallDetails),
			LastAgreement:    strPtr(intake.LastAgreement),
			CaseType:         strPtr(models.GeneralCaseType),
			Status:           strPtr(string(models.LegalUnderReview)),
			CreatedBy:        strPtr(completedBy),
		},
		CompletionDate: utils.NewDateOnly(utils.Today()),
		CreatedBy:      completedBy,
	}

	var followup *models.ClientFollowup
	var fileRecord *models.DisappointedClient

	if intake.FollowupID != nil {
		var record models.ClientFollowup
		err := tx.First(&record, "id = ?", *intake.FollowupID).Error
		if err == nil {
			followup = &record
			archived.Followup = followupSnapshotFrom(&record)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load followup predecessor: %w", err)
		}
	}

	if followup != nil && followup.DisappointedClientID != nil {
		var record models.DisappointedClient
		err := tx.First(&record, "id = ?", *followup.DisappointedClientID).Error
		if err == nil {
			fileRecord = &record
			archived.ClientName = record.ClientName
			archived.ClientPhone = record.Phone
			archived.FileManagement = fileSnapshotFrom(&record)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load file management predecessor: %w", err)
		}
	}
	archived.CompletionDetails = fmt.Sprintf("All stages completed for %s", archived.ClientName)

	if err := tx.Create(archived).Error; err != nil {
		return nil, fmt.Errorf("failed to create archived case: %w", err)
	}
	if fileRecord != nil {
		if err := tx.Delete(fileRecord).Error; err != nil {
			return nil, fmt.Errorf("failed to delete file management predecessor: %w", err)
		}
	}
	if followup != nil {
		if err := tx.Delete(followup).Error; err != nil {
			return nil, fmt.Errorf("failed to delete followup predecessor: %w", err)
		}
	}

	return archived, nil
}

// upsertCompletedClient keeps one roster row per original client: a second
// legal completion for the same client updates the existing row in place.
func upsertCompletedClient(tx *gorm.DB, originalClientID *uuid.UUID, archived *models.ArchivedCase, completedBy string) error {
	if originalClientID == nil {
		// No original client to key on; each completion gets its own row.
		completed := models.CompletedClient{
			ClientName:        archived.ClientName,
			ClientPhone:       archived.ClientPhone,
			CompletionType:    archived.Stage,
			CompletionDate:    archived.CompletionDate,
			CompletionDetails: archived.CompletionDetails,
			CreatedBy:         completedBy,
		}
		if err := tx.Create(&completed).Error; err != nil {
			return fmt.Errorf("failed to create completed client roster row: %w", err)
		}
		return nil
	}

	var existing models.CompletedClient
	err := tx.Where("original_client_id = ?", *originalClientID).First(&existing).Error
	if err == nil {
		existing.CompletionType = archived.Stage
		existing.CompletionDate = archived.CompletionDate
		existing.CompletionDetails = archived.CompletionDetails
		if saveErr := tx.Save(&existing).Error; saveErr != nil {
			return fmt.Errorf("failed to update completed client roster: %w", saveErr)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up completed client roster: %w", err)
	}

	completed := models.CompletedClient{
		OriginalClientID:  originalClientID,
		ClientName:        archived.ClientName,
		ClientPhone:       archived.ClientPhone,
		CompletionType:    archived.Stage,
		CompletionDate:    archived.CompletionDate,
		CompletionDetails: archived.CompletionDetails,
		CreatedBy:         completedBy,
	}
	if err := tx.Create(&completed).Error; err != nil {
		return fmt.Errorf("failed to create completed client roster row: %w", err)
	}
	return nil
}
