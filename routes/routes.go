package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-pos-backend/controllers"
	"hotel-pos-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	sc *controllers.SummaryController,
	bc *controllers.BuildingController,
	rc *controllers.RoomController,
	tc *controllers.TagController,
	hc *controllers.HotelProfileController,
	xc *controllers.SearchController,
	cc *controllers.ComprehensiveController,
	jwtSecret string,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/pos")
	api.Use(middleware.PartnerAuth(jwtSecret))
	{
		buildings := api.Group("/buildings")
		{
			buildings.POST("", bc.CreateBuilding)
			buildings.GET("", bc.GetBuildings)
			buildings.GET("/:id", bc.GetBuildingByID)
			buildings.PUT("/:id", bc.UpdateBuilding)
			buildings.DELETE("/:id", bc.DeleteBuilding)

			buildings.GET("/:id/floors", bc.GetFloors)
			buildings.POST("/:id/floors", bc.AddFloor)
			buildings.DELETE("/:id/floors/:floorName", bc.RemoveFloor)
			buildings.PATCH("/:id/floors/:floorName", bc.RenameFloor)
		}

		rooms := api.Group("/rooms")
		{
			rooms.POST("", rc.CreateRoom)
			rooms.GET("", rc.GetRooms)

			// static segment must not be shadowed by /:id
			rooms.GET("/building/:buildingId/floor/:floor", rc.GetRoomsByBuildingAndFloor)

			rooms.GET("/:id", rc.GetRoomByID)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
			rooms.DELETE("", rc.DeleteAllRooms)

			rooms.PATCH("/:id/status", rc.UpdateOperationalStatus)
			rooms.PATCH("/:id/status-room", rc.UpdateOccupancyStatus)
			rooms.PATCH("/:id/status-promotion", rc.UpdatePromotionStatus)
		}
		api.GET("/rooms-status-options", rc.GetStatusOptions)
		api.GET("/rooms-privileged-quota", rc.GetPrivilegedQuota)

		api.POST("/search-by-date", xc.SearchAvailable)
		api.POST("/search-checked-out", xc.SearchCheckedOut)
		api.POST("/search-cleaning", xc.SearchCleaning)
		api.DELETE("/search", xc.ClearSearch)

		tags := api.Group("/tags")
		{
			tags.POST("", tc.CreateTag)
			tags.GET("", tc.GetTags)
			tags.GET("/:id", tc.GetTagByID)
			tags.PUT("/:id", tc.UpdateTag)
			tags.DELETE("/:id", tc.DeleteTag)
			tags.DELETE("", tc.DeleteAllTags)
		}

		aboutHotel := api.Group("/about-hotel")
		{
			aboutHotel.GET("", hc.GetProfile)
			aboutHotel.POST("", hc.CreateOrUpdateProfile)
			aboutHotel.PUT("/:id", hc.UpdateProfile)
			aboutHotel.DELETE("/:id", hc.DeleteProfile)
		}

		pos := api.Group("/pos")
		{
			pos.POST("", sc.CreateSummary)
			pos.GET("", sc.GetSummaries)

			// must be registered before /:id
			pos.GET("/summary", sc.GetReport)

			pos.GET("/:id", sc.GetSummaryByID)
			pos.PUT("/:id", sc.UpdateSummary)
			pos.DELETE("/:id", sc.DeleteSummary)
			pos.DELETE("", sc.DeleteAllSummaries)
		}

		api.GET("/comprehensive-data", cc.GetComprehensiveData)
	}

	return r
}
