package controllers

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"visa-office-backend/config"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DownloadAllDocumentsController bundles every uploaded file of a client
// into an in-memory zip archive.
func (dc *DocumentController) DownloadAllDocumentsController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}

	docs, err := dc.DocumentRepo.GetDocumentsWithFiles(clientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while fetching documents",
			"error":   err.Error(),
		})
	}

	if len(docs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No uploaded files to download",
		})
	}

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)
	usedNames := make(map[string]bool)

	for _, doc := range docs {
		entryName := doc.Name
		if doc.FileName != nil && *doc.FileName != "" {
			entryName = *doc.FileName
		}
		entryName = filepath.Base(strings.TrimSpace(entryName))
		if entryName == "" || entryName == "." {
			entryName = fmt.Sprintf("%s_%s", doc.Name, doc.ID)
		}
		if usedNames[entryName] {
			entryName = fmt.Sprintf("%s_%s", doc.ID, entryName)
		}
		usedNames[entryName] = true

		writer, err := zipWriter.Create(entryName)
		if err != nil {
			config.Logger.Error("Failed to add file to zip archive",
				zap.Error(err),
				zap.String("documentID", doc.ID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong while building the archive",
				"error":   err.Error(),
			})
		}
		if _, err := writer.Write(doc.FileBytes); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong while building the archive",
				"error":   err.Error(),
			})
		}
	}

	if err := zipWriter.Close(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while finalizing the archive",
			"error":   err.Error(),
		})
	}

	fileName := fmt.Sprintf("client_documents_%s_%s.zip", clientID, utils.Today().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(buf.Bytes())
}
