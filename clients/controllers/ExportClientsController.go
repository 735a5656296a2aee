package controllers

import (
	"fmt"
	"visa-office-backend/config"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportClientsController streams the filtered client roster as an xlsx
// workbook, ledger figures included.
func (cc *ClientController) ExportClientsController(c *fiber.Ctx) error {
	filters := map[string]string{
		"search":    c.Query("search"),
		"status":    c.Query("status"),
		"visa_type": c.Query("visa_type"),
	}

	clients, _, err := cc.ClientRepo.GetFilteredClients(filters, false, 0, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while fetching clients",
			"error":   err.Error(),
		})
	}

	f := excelize.NewFile()
	sheetName := "Clients"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while building the export",
			"error":   err.Error(),
		})
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Phone", "Visa Type", "Status", "Total Amount", "Paid", "Remaining", "Created At", "Created By"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong while building the export",
				"error":   err.Error(),
			})
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong while building the export",
				"error":   err.Error(),
			})
		}
	}

	for row, client := range clients {
		values := []interface{}{
			client.Name,
			client.Phone,
			client.VisaType,
			string(client.Status),
			client.TotalAmount.String(),
			client.PaidSum().String(),
			client.Remaining().String(),
			client.CreatedAt.Format("2006-01-02"),
			client.CreatedBy,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Something went wrong while building the export",
					"error":   err.Error(),
				})
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Something went wrong while building the export",
					"error":   err.Error(),
				})
			}
		}
	}

	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		config.Logger.Error("Failed to serialize clients export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while writing the export",
			"error":   err.Error(),
		})
	}

	fileName := fmt.Sprintf("clients_export_%s.xlsx", utils.Today().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(buf.Bytes())
}
