package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user := currentUser(c)
	bundle, err := handler.exportService.Build(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, exportAttachment("json"))
	return c.JSON(bundle)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user := currentUser(c)
	rows, err := handler.exportService.BuildCSVRows(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to write export")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to write export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to write export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment("csv"))
	return c.Send(output.Bytes())
}

func exportAttachment(extension string) string {
	return fmt.Sprintf(`attachment; filename="wellspring-export-%s.%s"`, time.Now().Format("2006-01-02"), extension)
}
