package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ViewDocumentController streams the stored blob inline.
func (dc *DocumentController) ViewDocumentController(c *fiber.Ctx) error {
	return dc.serveDocument(c, false)
}

// DownloadDocumentController streams the stored blob as an attachment.
func (dc *DocumentController) DownloadDocumentController(c *fiber.Ctx) error {
	return dc.serveDocument(c, true)
}

func (dc *DocumentController) serveDocument(c *fiber.Ctx, asAttachment bool) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}
	documentID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid document ID",
			"error":   err.Error(),
		})
	}

	doc, err := dc.DocumentRepo.GetDocumentByID(clientID, documentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Document not found",
			"error":   err.Error(),
		})
	}

	if !doc.HasFile() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Document has no uploaded file",
		})
	}

	fileMime := "application/octet-stream"
	if doc.FileMime != nil && *doc.FileMime != "" {
		fileMime = *doc.FileMime
	}
	fileName := doc.Name
	if doc.FileName != nil && *doc.FileName != "" {
		fileName = *doc.FileName
	}

	c.Set(fiber.HeaderContentType, fileMime)
	disposition := "inline"
	if asAttachment {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`%s; filename="%s"`, disposition, fileName))

	return c.Send(doc.FileBytes)
}
