package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/interntrack/interntrack-backend-go/internal/domain/export"
	"github.com/interntrack/interntrack-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	DownloadCSV(w http.ResponseWriter, r *http.Request)
	ArchiveCSV(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{exportService: exportService}
}

// DownloadCSV streams the rendered CSV straight to the client.
func (h *exportHandlerImpl) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	doc, err := h.exportService.RenderCSV(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

func (h *exportHandlerImpl) ArchiveCSV(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.exportService.ArchiveCSV(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "CSV export archived", result)
}
