package handler

import (
	"net/http"
	"strconv"
	"time"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/notes のノートAPI（要bearerトークン）
type NoteHandler struct {
	noteUC *usecase.NoteUsecase
}

// DI
func NewNoteHandler(noteUC *usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{noteUC: noteUC}
}

// ノートのルートを登録。全部authミドルウェアの内側。
func (h *NoteHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("/api/notes", authMW)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/latest", h.latest)
	g.GET("/:noteId", h.get)
	g.PUT("/:noteId", h.update)
	g.DELETE("/:noteId", h.remove)
}

// 作成・更新のリクエストボディ。
type noteRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (h *NoteHandler) create(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid request body")
	}

	// 所有者はトークンのsubjectで固定（リクエスト側では指定できない）
	out, err := h.noteUC.Create(c.Request().Context(), username, usecase.NoteInput{
		Title:     req.Title,
		Content:   req.Content,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *NoteHandler) get(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid note id")
	}

	out, err := h.noteUC.Get(c.Request().Context(), username, noteID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *NoteHandler) list(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	// page（default 0）
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid page")
		}
		page = p
	}

	// size（default 20）
	size := 0
	if v := c.QueryParam("size"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid size")
		}
		size = s
	}

	out, err := h.noteUC.ListActive(c.Request().Context(), username, page, size)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *NoteHandler) latest(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	// limit（default 1000）
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid limit")
		}
		limit = l
	}

	out, err := h.noteUC.ListLatest(c.Request().Context(), username, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *NoteHandler) update(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid note id")
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid request body")
	}

	out, err := h.noteUC.Update(c.Request().Context(), username, noteID, usecase.NoteInput{
		Title:     req.Title,
		Content:   req.Content,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *NoteHandler) remove(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid note id")
	}

	if err := h.noteUC.Delete(c.Request().Context(), username, noteID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseNoteID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("noteId"), 10, 64)
}
