package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/files"
	"github.com/openlearn/backend/internal/store"
)

type SeminarFileController struct {
	db    *store.Postgres
	blobs *files.Store
}

// fileTypeFor buckets an upload by extension for the frontend's icons.
func fileTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "PDF"
	case ".mp4", ".webm", ".mov", ".avi", ".mkv":
		return "VIDEO"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp":
		return "IMAGE"
	default:
		return "DOCUMENT"
	}
}

func (ctl *SeminarFileController) Upload(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := ctl.db.GetSeminar(ctx, domain.SeminarID(id)); err != nil {
		storeError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer src.Close()

	name, path, size, err := ctl.blobs.Save(src, header.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storing file failed"})
		return
	}

	uploadedBy := ""
	if claims := currentClaims(c); claims != nil {
		uploadedBy = claims.Username
	}
	f := domain.SeminarFile{
		SeminarID:        domain.SeminarID(id),
		FileName:         name,
		OriginalFileName: header.Filename,
		FilePath:         path,
		FileType:         fileTypeFor(header.Filename),
		FileSize:         size,
		UploadedBy:       uploadedBy,
		Description:      c.PostForm("description"),
	}
	if err := ctl.db.CreateSeminarFile(ctx, &f); err != nil {
		_ = ctl.blobs.Delete(path)
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (ctl *SeminarFileController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := ctl.db.ListSeminarFiles(c.Request.Context(), domain.SeminarID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *SeminarFileController) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fileID, ok := pathID(c, "fileId")
	if !ok {
		return
	}
	f, err := ctl.db.GetSeminarFile(c.Request.Context(), domain.SeminarID(id), domain.SeminarFileID(fileID))
	if err != nil {
		storeError(c, err)
		return
	}
	c.FileAttachment(f.FilePath, f.OriginalFileName)
}

func (ctl *SeminarFileController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fileID, ok := pathID(c, "fileId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	f, err := ctl.db.GetSeminarFile(ctx, domain.SeminarID(id), domain.SeminarFileID(fileID))
	if err != nil {
		storeError(c, err)
		return
	}
	if err := ctl.db.DeleteSeminarFile(ctx, domain.SeminarID(id), domain.SeminarFileID(fileID)); err != nil {
		storeError(c, err)
		return
	}
	if err := ctl.blobs.Delete(f.FilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "removing file failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
