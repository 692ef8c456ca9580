package attendancetype

import (
	"net/http"

	typederrors "go-hostel/internal/attendancetype/errors"
	"go-hostel/internal/shared/apperror"
	"go-hostel/internal/shared/photostore"
	"go-hostel/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	photos  photostore.Store
}

func NewHandler(service Service, photos photostore.Store) *Handler {
	return &Handler{service: service, photos: photos}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MarkGeneral(c *gin.Context) {
	var req MarkGeneralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, created, err := h.service.MarkGeneral(c.Request.Context(), c.GetString("user_id"), req.Date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) PostWard(c *gin.Context) {
	var req PostWardRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	// reject bad types before the photo hits disk, or the upload is orphaned
	if !IsWardType(req.Type) {
		writeServiceError(c, typederrors.ErrInvalidType)
		return
	}

	photo, err := h.photos.Save(c, "photo", "attendance")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, created, err := h.service.PostWard(c.Request.Context(), c.GetString("user_id"), req.Date, req.Type, photo)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	resp, err := h.service.GetMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	resp, err := h.service.Verify(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Dismiss(c *gin.Context) {
	resp, err := h.service.Dismiss(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
