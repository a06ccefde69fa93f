package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/files"
	"github.com/openlearn/backend/internal/store"
)

type BookController struct {
	db    *store.Postgres
	blobs *files.Store
}

func (ctl *BookController) List(c *gin.Context) {
	books, err := ctl.db.ListBooks(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (ctl *BookController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	book, err := ctl.db.GetBook(c.Request.Context(), domain.BookID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Create takes a multipart form so a book record and its file land together.
// The file part is optional; link-only books carry just metadata.
func (ctl *BookController) Create(c *gin.Context) {
	title := c.PostForm("title")
	author := c.PostForm("author")
	if title == "" || author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and author are required"})
		return
	}

	book := domain.Book{
		Title:       title,
		Author:      author,
		Description: c.PostForm("description"),
		Icon:        c.PostForm("icon"),
	}
	if raw := c.PostForm("courseId"); raw != "" {
		courseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || courseID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid courseId"})
			return
		}
		book.CourseID = domain.CourseID(courseID)
	}

	ctx := c.Request.Context()
	if book.CourseID != 0 {
		if _, err := ctl.db.GetCourse(ctx, book.CourseID); err != nil {
			storeError(c, err)
			return
		}
	}

	if header, err := c.FormFile("file"); err == nil {
		src, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		defer src.Close()
		_, path, size, err := ctl.blobs.Save(src, header.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storing file failed"})
			return
		}
		book.FilePath = path
		book.OriginalFileName = header.Filename
		book.FileType = fileTypeFor(header.Filename)
		book.FileSize = size
	}

	if err := ctl.db.CreateBook(ctx, &book); err != nil {
		if book.FilePath != "" {
			_ = ctl.blobs.Delete(book.FilePath)
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (ctl *BookController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title       string `json:"title" binding:"required"`
		Author      string `json:"author" binding:"required"`
		Description string `json:"description"`
		CourseID    int64  `json:"courseId"`
		Icon        string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	book := domain.Book{
		ID:          domain.BookID(id),
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CourseID:    domain.CourseID(req.CourseID),
		Icon:        req.Icon,
	}
	if err := ctl.db.UpdateBook(c.Request.Context(), &book); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (ctl *BookController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	book, err := ctl.db.GetBook(ctx, domain.BookID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	if err := ctl.db.DeleteBook(ctx, domain.BookID(id)); err != nil {
		storeError(c, err)
		return
	}
	if book.FilePath != "" {
		if err := ctl.blobs.Delete(book.FilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "removing file failed"})
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (ctl *BookController) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	book, err := ctl.db.GetBook(c.Request.Context(), domain.BookID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	if book.FilePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "book has no file"})
		return
	}
	c.FileAttachment(book.FilePath, book.OriginalFileName)
}
