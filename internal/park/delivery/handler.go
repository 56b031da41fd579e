package delivery

import (
	"net/http"
	"strconv"

	"parkhub-backend/internal/park/domain"
	"parkhub-backend/internal/park/usecase"
	"parkhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ParkHandler struct {
	parkUsecase usecase.ParkUsecase
}

func NewParkHandler(parkUsecase usecase.ParkUsecase) *ParkHandler {
	return &ParkHandler{parkUsecase: parkUsecase}
}

func respond(c *gin.Context, res *response.Result) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(http.StatusBadRequest, res)
}

func (h *ParkHandler) ListParks(c *gin.Context) {
	respond(c, h.parkUsecase.GetParks(c.Query("parkName")))
}

func (h *ParkHandler) GetPark(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("parkId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid park id"))
		return
	}
	respond(c, h.parkUsecase.GetPark(uint(id)))
}

func (h *ParkHandler) AddPark(c *gin.Context) {
	var park domain.Park
	if err := c.ShouldBindJSON(&park); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.parkUsecase.AddPark(c.GetHeader("Authorization"), &park))
}

func (h *ParkHandler) UpdatePark(c *gin.Context) {
	var park domain.Park
	if err := c.ShouldBindJSON(&park); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.parkUsecase.UpdatePark(c.GetHeader("Authorization"), &park))
}

type deleteParkRequest struct {
	ParkID uint `json:"parkId" binding:"required"`
}

func (h *ParkHandler) DeletePark(c *gin.Context) {
	var req deleteParkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.parkUsecase.DeletePark(c.GetHeader("Authorization"), req.ParkID))
}
