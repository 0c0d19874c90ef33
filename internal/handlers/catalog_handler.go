package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CategoriesResponse{Success: true, Categories: categories})
}

func (h *CatalogHandler) GetCompanies(c *fiber.Ctx) error {
	companies, err := h.catalog.ListCompanies()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CompaniesResponse{Success: true, Companies: companies})
}

func (h *CatalogHandler) GetJob(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return respondError(c, services.ErrJobNotFound)
	}

	job, err := h.catalog.GetJobDetail(uint(jobID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.JobDetailResponse{Success: true, Job: *job})
}

func (h *CatalogHandler) SearchJobs(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	results, err := h.catalog.SearchJobs(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SearchResponse{Success: true, Results: results, Count: len(results)})
}
