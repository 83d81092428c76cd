package controllers

import (
	"github.com/gin-gonic/gin"

	"raahi/internal/services"
	"raahi/pkg/utils"
)

type DataController struct {
	dataService services.DataServiceInterface
}

func NewDataController(dataService services.DataServiceInterface) *DataController {
	return &DataController{
		dataService: dataService,
	}
}

func (d *DataController) GetWeather(c *gin.Context) {
	weather, err := d.dataService.ListWeather(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}

func (d *DataController) GetCrowd(c *gin.Context) {
	crowd, err := d.dataService.ListCrowd(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, crowd, "Crowd levels fetched successfully")
}

func (d *DataController) GetCurrency(c *gin.Context) {
	rates, err := d.dataService.ListCurrency(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rates, "Currency rates fetched successfully")
}

func (d *DataController) GetHotels(c *gin.Context) {
	hotels, err := d.dataService.ListHotels(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

func (d *DataController) GetPOIs(c *gin.Context) {
	pois, err := d.dataService.ListPOIs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

func (d *DataController) GetPOIsByCity(c *gin.Context) {
	pois, err := d.dataService.ListPOIsByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}
