package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gen-git-26/FinSight/internal/archive"
)

type ArchiveStore interface {
	List() ([]archive.Info, error)
	Read(name string) ([]archive.Record, error)
}

type ArchiveHandler struct {
	store ArchiveStore
}

func NewArchiveHandler(store ArchiveStore) *ArchiveHandler {
	return &ArchiveHandler{store: store}
}

func (h *ArchiveHandler) GetArchives(c *gin.Context) {
	infos, err := h.store.List()
	if err != nil {
		slog.Error("error listing archives", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	archives := make([]ArchiveResponse, 0, len(infos))
	for _, info := range infos {
		archives = append(archives, ArchiveResponse{
			Name:      info.Name,
			Articles:  info.Articles,
			SizeBytes: info.SizeBytes,
		})
	}

	c.JSON(http.StatusOK, ArchiveListResponse{
		Archives: archives,
		Total:    len(archives),
	})
}

func (h *ArchiveHandler) GetArchive(c *gin.Context) {
	name := c.Param("name")

	records, err := h.store.Read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Archive not found"})
			return
		}
		slog.Error("error reading archive", "name", name, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid archive name"})
		return
	}

	articles := make([]ArticleResponse, 0, len(records))
	for _, r := range records {
		articles = append(articles, ArticleResponse{
			Headline: r.Headline,
			Date:     r.Date,
			Summary:  r.Summary,
			Content:  r.Content,
		})
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArchiveHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
