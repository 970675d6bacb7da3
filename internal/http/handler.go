package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parcel-service/internal/geometry"
	"parcel-service/internal/http/middleware"
	"parcel-service/internal/repository"
	"parcel-service/internal/service"
)

type Handler struct {
	parcelService *service.ParcelService
	reportService *service.ReportService
	offerService  *service.OfferService
	log           zerolog.Logger
}

func NewHandler(
	parcelService *service.ParcelService,
	reportService *service.ReportService,
	offerService *service.OfferService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		parcelService: parcelService,
		reportService: reportService,
		offerService:  offerService,
		log:           log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/")
	protected.Use(authMiddleware)

	parcels := protected.Group("/parcels")
	{
		parcels.POST("", h.createParcel)
		parcels.GET("", h.listParcels)
		parcels.GET("/:id", h.getParcel)
		parcels.PUT("/:id", h.updateParcel)
		parcels.DELETE("/:id", h.deleteParcel)
	}

	landuses := protected.Group("/landuses")
	{
		landuses.GET("", h.listLanduses)
		landuses.POST("", h.createLanduse)
	}

	reports := protected.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
	}

	offers := protected.Group("/offers")
	{
		offers.POST("", h.createOffer)
		offers.GET("", h.listOffers)
		offers.GET("/:id", h.getOffer)
		offers.POST("/:id/confirm", h.confirmOffer)
		offers.DELETE("/:id", h.deleteOffer)
	}

	basket := protected.Group("/basket")
	{
		basket.POST("/items", h.addBasketItem)
		basket.GET("/items", h.listBasketItems)
		basket.DELETE("/items/:id", h.removeBasketItem)
		basket.GET("/summary", h.getBasketSummary)
	}
}

type parcelAttributesRequest struct {
	AlkisFeatureID   *string `json:"alkis_feature_id"`
	StateName        *string `json:"state_name"`
	DistrictName     *string `json:"district_name"`
	CommunalDistrict *string `json:"communal_district"`
	MunicipalityName *string `json:"municipality_name"`
	CadastralArea    *string `json:"cadastral_area"`
	CadastralParcel  *string `json:"cadastral_parcel"`
	Zipcode          *string `json:"zipcode"`
}

func (r parcelAttributesRequest) toInput() service.ParcelAttributes {
	return service.ParcelAttributes{
		AlkisFeatureID:   r.AlkisFeatureID,
		StateName:        r.StateName,
		DistrictName:     r.DistrictName,
		CommunalDistrict: r.CommunalDistrict,
		MunicipalityName: r.MunicipalityName,
		CadastralArea:    r.CadastralArea,
		CadastralParcel:  r.CadastralParcel,
		Zipcode:          r.Zipcode,
	}
}

func (h *Handler) createParcel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		parcelAttributesRequest
		Coordinates []geometry.LatLng `json:"coordinates" binding:"required"`
		LanduseID   *string           `json:"landuse_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	parcel, err := h.parcelService.Create(c.Request.Context(), principal, service.CreateParcelInput{
		Coordinates: req.Coordinates,
		LanduseID:   req.LanduseID,
		Attributes:  req.toInput(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(parcel))
}

func (h *Handler) getParcel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid parcel id"))
		return
	}

	parcel, err := h.parcelService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(parcel))
}

func (h *Handler) listParcels(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.ParcelListFilter{}

	if landuseID := strings.TrimSpace(c.Query("landuse_id")); landuseID != "" {
		filter.LanduseID = &landuseID
	}
	if zipcode := strings.TrimSpace(c.Query("zipcode")); zipcode != "" {
		filter.Zipcode = &zipcode
	}
	if stateName := strings.TrimSpace(c.Query("state_name")); stateName != "" {
		filter.StateName = &stateName
	}

	parcels, err := h.parcelService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(parcels))
}

func (h *Handler) updateParcel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid parcel id"))
		return
	}

	var req struct {
		parcelAttributesRequest
		Coordinates []geometry.LatLng `json:"coordinates"`
		LanduseID   *string           `json:"landuse_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	parcel, err := h.parcelService.Update(c.Request.Context(), principal, id, service.UpdateParcelInput{
		Coordinates: req.Coordinates,
		LanduseID:   req.LanduseID,
		Attributes:  req.toInput(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(parcel))
}

func (h *Handler) deleteParcel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid parcel id"))
		return
	}

	if err := h.parcelService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listLanduses(c *gin.Context) {
	landuses, err := h.parcelService.ListLanduses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(landuses))
}

func (h *Handler) createLanduse(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	landuse, err := h.parcelService.CreateLanduse(c.Request.Context(), principal, req.Name, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(landuse))
}

func (h *Handler) createReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		ParcelIDs       []string `json:"parcel_ids" binding:"required"`
		SolarIrradiance *float64 `json:"solar_irradiance"`
		WindSpeed       *float64 `json:"wind_speed"`
		GridDistance    *float64 `json:"grid_distance"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), principal, service.CreateReportInput{
		ParcelIDs:       req.ParcelIDs,
		SolarIrradiance: req.SolarIrradiance,
		WindSpeed:       req.WindSpeed,
		GridDistance:    req.GridDistance,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(report))
}

func (h *Handler) getReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid report id"))
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) listReports(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	reports, err := h.reportService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(reports))
}

func (h *Handler) createOffer(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		ParcelID string  `json:"parcel_id" binding:"required"`
		Price    float64 `json:"price" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	offer, err := h.offerService.Create(c.Request.Context(), principal, service.CreateOfferInput{
		ParcelID: req.ParcelID,
		Price:    req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(offer))
}

func (h *Handler) getOffer(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid offer id"))
		return
	}

	offer, err := h.offerService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(offer))
}

func (h *Handler) listOffers(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.OfferListFilter{}

	if parcelID := strings.TrimSpace(c.Query("parcel_id")); parcelID != "" {
		filter.ParcelID = &parcelID
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		isActive := strings.EqualFold(active, "true")
		filter.IsActive = &isActive
	}

	offers, err := h.offerService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(offers))
}

func (h *Handler) confirmOffer(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid offer id"))
		return
	}

	confirmation, err := h.offerService.Confirm(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(confirmation))
}

func (h *Handler) deleteOffer(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid offer id"))
		return
	}

	if err := h.offerService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) addBasketItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		ParcelID string `json:"parcel_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	item, err := h.offerService.AddBasketItem(c.Request.Context(), principal, req.ParcelID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(item))
}

func (h *Handler) listBasketItems(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	items, err := h.offerService.ListBasketItems(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(items))
}

func (h *Handler) removeBasketItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid basket item id"))
		return
	}

	if err := h.offerService.RemoveBasketItem(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getBasketSummary(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	summary, err := h.offerService.GetBasketSummary(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var invalidGeometry *geometry.InvalidGeometryError
	var projection *geometry.ProjectionError

	switch {
	case errors.As(err, &invalidGeometry):
		c.JSON(http.StatusBadRequest, errorResponse(invalidGeometry.Error()))
	case errors.As(err, &projection):
		c.JSON(http.StatusBadRequest, errorResponse(projection.Error()))
	case errors.Is(err, service.ErrNoGeometry):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
