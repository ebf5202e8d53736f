package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iumatch/coursematch-backend/internal/response"
	"github.com/iumatch/coursematch-backend/internal/service"
)

const defaultPerPage = 50

// CatalogHandler serves the public course catalog and major lists.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Courses godoc
// GET /api/v1/catalog/courses
func (h *CatalogHandler) Courses(c *gin.Context) {
	courses := h.catalog.Courses()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = defaultPerPage
	}

	total := len(courses)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	totalPages := (total + perPage - 1) / perPage
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"courses": courses[start:end]}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Course godoc
// GET /api/v1/catalog/courses/:id
func (h *CatalogHandler) Course(c *gin.Context) {
	course, ok := h.catalog.Course(c.Param("id"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Majors godoc
// GET /api/v1/catalog/majors
func (h *CatalogHandler) Majors(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"majors": h.catalog.Majors()})
}
